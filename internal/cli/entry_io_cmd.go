package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/visotime/internal/cli/formatter"
	"github.com/alexanderramin/visotime/internal/importer"
	"github.com/spf13/cobra"
)

func newEntryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from a JSON file",
		Long: `Import entries from a JSON file written by 'visotime entry export', or
from a bare array of stored entries. The import is all-or-nothing: if any
entry is invalid or a day would go over the daily limit, nothing is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.LoadImportFile(args[0])
			if err != nil {
				return fmt.Errorf("loading import file: %w", err)
			}
			rules := importer.Rules{MaxDailyHours: app.maxDailyHours(), Projects: app.catalog()}
			if errs := importer.ValidateImportFile(f, rules); len(errs) > 0 {
				return formatValidationErrors(errs)
			}

			stop := formatter.StartSpinner(app.spinnerWriter(cmd.ErrOrStderr()), "Importing entries...")
			res, err := app.importEntriesUseCase().Import(cmd.Context(), importer.Convert(f))
			stop()
			if err != nil {
				return fmt.Errorf("importing entries: %w", err)
			}
			created, ok := res.Data()
			if !ok {
				return errors.New(res.Message())
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Imported %d %s", len(created), plural(len(created), "entry", "entries"))))
			return nil
		},
	}
}

func newEntryExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all entries as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.listEntriesUseCase().ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			entries, ok := res.Data()
			if !ok {
				return errors.New(res.Message())
			}

			data, err := json.MarshalIndent(importer.NewExportFile(entries, app.now()), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding entries: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Success(fmt.Sprintf("Exported %d %s to %s",
				len(entries), plural(len(entries), "entry", "entries"), out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to FILE instead of stdout")

	return cmd
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

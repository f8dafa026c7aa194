package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/visotime/internal/aggregate"
	"github.com/alexanderramin/visotime/internal/cli/formatter"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/form"
	"github.com/spf13/cobra"
)

// errInvalidEntry is returned after field errors have been printed.
var errInvalidEntry = errors.New("entry not saved: fix the fields above")

// formFieldOrder is the order fields appear in, in both the CLI and the TUI.
var formFieldOrder = []string{form.FieldDate, form.FieldProject, form.FieldHours, form.FieldDescription}

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"e"},
		Short:   "Add, list, remove, import and export time entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryListCmd(app),
		newEntryRemoveCmd(app),
		newEntryImportCmd(app),
		newEntryExportCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var date, project, description string
	var hours hoursValue

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log hours against a project",
		Example: `  visotime entry add --project CLIENT_A --hours 2.5 --description "API review"
  visotime entry add --date 2026-03-02 --project PERSONAL --hours 45m --description "Reading"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.now().Format(domain.DateLayout)
			}
			in := form.Entry{
				Date:        date,
				ProjectID:   project,
				Hours:       hours.String(),
				Description: description,
			}
			if errs := form.Validate(in, app.formRules()); !errs.Empty() {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FieldErrors(errs, formFieldOrder))
				return errInvalidEntry
			}

			stop := formatter.StartSpinner(app.spinnerWriter(cmd.ErrOrStderr()), "Saving entry...")
			res, err := app.createEntryUseCase().Create(cmd.Context(), in.Candidate())
			stop()
			if err != nil {
				return fmt.Errorf("creating entry: %w", err)
			}
			entry, ok := res.Data()
			if !ok {
				return errors.New(res.Message())
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.EntryCreated(entry, app.catalog()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date worked, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID (see 'visotime projects')")
	cmd.Flags().VarP(&hours, "hours", "H", "Hours worked: 2.5 or a duration like 2h30m")
	cmd.Flags().StringVarP(&description, "description", "d", "", "What you worked on")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show entries grouped by day, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date != "" && !domain.ValidDate(date) {
				return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", date)
			}

			stop := formatter.StartSpinner(app.spinnerWriter(cmd.ErrOrStderr()), "Loading entries...")
			res, err := app.listEntriesUseCase().ListAll(cmd.Context())
			stop()
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			entries, ok := res.Data()
			if !ok {
				return errors.New(res.Message())
			}

			if date != "" {
				entries = entriesOn(entries, date)
			}
			groups := aggregate.GroupByDate(entries)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(
				groups, aggregate.GrandTotal(groups), app.catalog(), app.maxDailyHours(), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only show this day, YYYY-MM-DD")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Long:    "Delete an entry by its ID or by a unique ID prefix, such as the short ID shown by 'visotime entry list'.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner(app.spinnerWriter(cmd.ErrOrStderr()), "Deleting entry...")
			id, err := resolveEntryID(cmd.Context(), app, args[0])
			if err != nil {
				stop()
				return err
			}
			res, err := app.deleteEntryUseCase().Delete(cmd.Context(), id)
			stop()
			if err != nil {
				return fmt.Errorf("deleting entry %s: %w", id, err)
			}
			if !res.Success() {
				return errors.New(res.Message())
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed "+formatter.Dim(id)))
			return nil
		},
	}
}

func entriesOn(entries []domain.TimeEntry, date string) []domain.TimeEntry {
	var out []domain.TimeEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// spinnerWriter returns w when progress can be animated, nil otherwise.
func (a *App) spinnerWriter(w io.Writer) io.Writer {
	if !a.interactive() {
		return nil
	}
	return w
}

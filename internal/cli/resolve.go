package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// resolveEntryID resolves an entry identifier which can be:
//   - A full entry ID
//   - A unique ID prefix, such as the short ID shown by "entry list"
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	res, err := app.listEntriesUseCase().ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("listing entries: %w", err)
	}
	entries, ok := res.Data()
	if !ok {
		return "", errors.New(res.Message())
	}

	var matches []string
	for _, e := range entries {
		if e.ID == input {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no entry matches %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID %q is ambiguous: it matches %d entries", input, len(matches))
	}
}

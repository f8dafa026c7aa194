package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
)

// MsgNothingToImport is returned when Import is called with no candidates.
const MsgNothingToImport = "Nothing to import."

// ImportRejectedMessage prefixes a per-entry failure with its 1-based
// position in the batch.
func ImportRejectedMessage(position int, msg string) string {
	return fmt.Sprintf("Entry %d: %s", position, msg)
}

func (s *entryService) Import(ctx context.Context, candidates []domain.NewTimeEntry) (res app.Result[[]domain.TimeEntry], err error) {
	startedAt := s.now()
	fields := map[string]any{"candidates": len(candidates)}
	defer func() { s.observe(ctx, "import-entries", startedAt, res.Success(), res.Message(), err, fields) }()

	if err = wait(ctx, s.delays.Create); err != nil {
		return res, err
	}

	if len(candidates) == 0 {
		return app.Fail[[]domain.TimeEntry](MsgNothingToImport), nil
	}
	for i, c := range candidates {
		if msg := rejectCandidate(c); msg != "" {
			return app.Fail[[]domain.TimeEntry](ImportRejectedMessage(i+1, msg)), nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var created []domain.TimeEntry
	err = s.store.Update(ctx, func(current []domain.TimeEntry) ([]domain.TimeEntry, error) {
		// Update may retry fn, so nothing outside it is mutated until it
		// succeeds.
		batch := make([]domain.TimeEntry, 0, len(candidates))
		added := make(map[string]float64)
		for _, c := range candidates {
			logged := hoursOn(current, c.Date) + added[c.Date]
			if logged+c.Hours > s.maxDaily {
				return nil, &dailyLimitError{remaining: s.maxDaily - logged, date: c.Date}
			}
			added[c.Date] += c.Hours
			batch = append(batch, domain.TimeEntry{
				ID:          s.newID(),
				Date:        c.Date,
				ProjectID:   c.ProjectID,
				Hours:       c.Hours,
				Description: c.Description,
				CreatedAt:   s.now().UnixMilli(),
			})
		}
		created = batch
		return append(current, batch...), nil
	})

	var limitErr *dailyLimitError
	if errors.As(err, &limitErr) {
		return app.Fail[[]domain.TimeEntry](limitErr.Error()), nil
	}
	if err != nil {
		return res, fmt.Errorf("importing entries: %w", err)
	}

	fields["created"] = len(created)
	return app.Ok(created), nil
}

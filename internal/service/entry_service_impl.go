package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/repository"
	"github.com/google/uuid"
)

// Failure messages shown to the user verbatim.
const (
	MsgFieldsRequired = "All fields are required."
	MsgHoursPositive  = "Hours must be greater than 0."
	MsgInvalidDate    = "Date must be a valid YYYY-MM-DD date."
)

// DailyLimitMessage is the failure message for a create that would push
// date past the cap.
func DailyLimitMessage(remaining float64, date string) string {
	return fmt.Sprintf("Daily limit exceeded. You have %sh remaining for %s.", formatHours(remaining), date)
}

// Delays are the simulated latencies applied before each operation.
type Delays struct {
	List   time.Duration
	Create time.Duration
	Delete time.Duration
}

// EntryServiceOptions tunes an EntryService. Zero values select defaults.
type EntryServiceOptions struct {
	MaxDailyHours float64
	Delays        Delays
	Now           func() time.Time
	NewID         func() string
}

type entryService struct {
	store    repository.EntryStore
	maxDaily float64
	delays   Delays
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver

	// mu serializes operations so each one sees the previous one's writes.
	mu sync.Mutex
}

func NewEntryService(store repository.EntryStore, opts EntryServiceOptions, observers ...UseCaseObserver) EntryService {
	s := &entryService{
		store:    store,
		maxDaily: opts.MaxDailyHours,
		delays:   opts.Delays,
		now:      opts.Now,
		newID:    opts.NewID,
		observer: useCaseObserverOrNoop(observers),
	}
	if !(s.maxDaily > 0) || math.IsInf(s.maxDaily, 0) {
		s.maxDaily = domain.DefaultMaxDailyHours
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// dailyLimitError aborts a store update when the cap would be exceeded.
type dailyLimitError struct {
	remaining float64
	date      string
}

func (e *dailyLimitError) Error() string {
	return DailyLimitMessage(e.remaining, e.date)
}

func (s *entryService) ListAll(ctx context.Context) (res app.Result[[]domain.TimeEntry], err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "list-entries", startedAt, res.Success(), res.Message(), err, fields) }()

	if err = wait(ctx, s.delays.List); err != nil {
		return res, err
	}

	s.mu.Lock()
	entries, err := s.store.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return res, fmt.Errorf("listing entries: %w", err)
	}

	sorted := slices.Clone(entries)
	sortNewestFirst(sorted)
	fields["count"] = len(sorted)
	return app.Ok(sorted), nil
}

func (s *entryService) Create(ctx context.Context, c domain.NewTimeEntry) (res app.Result[domain.TimeEntry], err error) {
	startedAt := s.now()
	fields := map[string]any{"date": c.Date, "project": c.ProjectID, "hours": c.Hours}
	defer func() { s.observe(ctx, "create-entry", startedAt, res.Success(), res.Message(), err, fields) }()

	if err = wait(ctx, s.delays.Create); err != nil {
		return res, err
	}

	if msg := rejectCandidate(c); msg != "" {
		return app.Fail[domain.TimeEntry](msg), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var created domain.TimeEntry
	err = s.store.Update(ctx, func(current []domain.TimeEntry) ([]domain.TimeEntry, error) {
		logged := hoursOn(current, c.Date)
		if logged+c.Hours > s.maxDaily {
			return nil, &dailyLimitError{remaining: s.maxDaily - logged, date: c.Date}
		}
		created = domain.TimeEntry{
			ID:          s.newID(),
			Date:        c.Date,
			ProjectID:   c.ProjectID,
			Hours:       c.Hours,
			Description: c.Description,
			CreatedAt:   s.now().UnixMilli(),
		}
		return append(current, created), nil
	})

	var limitErr *dailyLimitError
	if errors.As(err, &limitErr) {
		return app.Fail[domain.TimeEntry](limitErr.Error()), nil
	}
	if err != nil {
		return res, fmt.Errorf("creating entry: %w", err)
	}

	fields["id"] = created.ID
	return app.Ok(created), nil
}

func (s *entryService) Delete(ctx context.Context, id string) (res app.Result[struct{}], err error) {
	startedAt := s.now()
	fields := map[string]any{"id": id}
	defer func() { s.observe(ctx, "delete-entry", startedAt, res.Success(), res.Message(), err, fields) }()

	if err = wait(ctx, s.delays.Delete); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	err = s.store.Update(ctx, func(current []domain.TimeEntry) ([]domain.TimeEntry, error) {
		kept := slices.DeleteFunc(slices.Clone(current), func(e domain.TimeEntry) bool { return e.ID == id })
		removed = len(current) - len(kept)
		return kept, nil
	})
	if err != nil {
		return res, fmt.Errorf("deleting entry: %w", err)
	}

	fields["removed"] = removed
	return app.Ok(struct{}{}), nil
}

func (s *entryService) observe(ctx context.Context, name string, startedAt time.Time, ok bool, msg string, err error, fields map[string]any) {
	if msg != "" {
		fields["rejected"] = msg
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Success:   err == nil && ok,
		Err:       err,
		Fields:    fields,
	})
}

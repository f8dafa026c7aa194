package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/google/uuid"
)

var createdAtCounter atomic.Int64

// EntryOption customizes a fixture entry.
type EntryOption func(*domain.TimeEntry)

func WithDate(date string) EntryOption {
	return func(e *domain.TimeEntry) { e.Date = date }
}

func WithProject(id string) EntryOption {
	return func(e *domain.TimeEntry) { e.ProjectID = id }
}

func WithHours(h float64) EntryOption {
	return func(e *domain.TimeEntry) { e.Hours = h }
}

func WithDescription(d string) EntryOption {
	return func(e *domain.TimeEntry) { e.Description = d }
}

func WithCreatedAt(ms int64) EntryOption {
	return func(e *domain.TimeEntry) { e.CreatedAt = ms }
}

func WithID(id string) EntryOption {
	return func(e *domain.TimeEntry) { e.ID = id }
}

// NewTestEntry returns a valid entry. Successive fixtures get strictly
// increasing CreatedAt values so ordering tests are deterministic.
func NewTestEntry(opts ...EntryOption) domain.TimeEntry {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).UnixMilli()
	e := domain.TimeEntry{
		ID:          uuid.New().String(),
		Date:        "2024-01-15",
		ProjectID:   domain.ProjectVisoInternal,
		Hours:       1,
		Description: "test entry",
		CreatedAt:   base + createdAtCounter.Add(1),
	}
	for _, o := range opts {
		o(&e)
	}
	return e
}

// NewTestCandidate returns a valid create candidate.
func NewTestCandidate(date string, hours float64) domain.NewTimeEntry {
	return domain.NewTimeEntry{
		Date:        date,
		ProjectID:   domain.ProjectVisoInternal,
		Hours:       hours,
		Description: "work",
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/visotime/internal/domain"
)

// StorageKey is the single key under which the whole entry collection is
// stored, in every backend.
const StorageKey = "viso_time_entries"

// ErrCorruptBlob is returned when the stored collection cannot be decoded.
var ErrCorruptBlob = errors.New("stored entries are corrupt")

// UpdateFunc receives the current collection and returns its replacement.
// Returning an error aborts the update without writing anything.
type UpdateFunc func(entries []domain.TimeEntry) ([]domain.TimeEntry, error)

// EntryStore persists the entire entry collection as one value.
type EntryStore interface {
	// Load returns the stored collection, or an empty slice if nothing has
	// been stored yet.
	Load(ctx context.Context) ([]domain.TimeEntry, error)
	// Save replaces the stored collection.
	Save(ctx context.Context, entries []domain.TimeEntry) error
	// Update atomically reads, transforms and writes the collection.
	Update(ctx context.Context, fn UpdateFunc) error
}

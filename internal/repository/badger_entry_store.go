package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how often Update re-runs after Badger reports
// a write conflict.
const maxConflictRetries = 3

// BadgerEntryStore implements EntryStore on a Badger key-value store.
type BadgerEntryStore struct {
	db  *badger.DB
	key []byte
}

func NewBadgerEntryStore(bdb *badger.DB) *BadgerEntryStore {
	return &BadgerEntryStore{db: bdb, key: []byte(StorageKey)}
}

func (s *BadgerEntryStore) Load(ctx context.Context) ([]domain.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entries []domain.TimeEntry
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		entries, err = s.read(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BadgerEntryStore) Save(ctx context.Context, entries []domain.TimeEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return s.write(txn, entries)
	})
}

// Update may invoke fn more than once if a concurrent writer commits first.
func (s *BadgerEntryStore) Update(ctx context.Context, fn UpdateFunc) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			current, err := s.read(txn)
			if err != nil {
				return err
			}
			next, err := fn(current)
			if err != nil {
				return err
			}
			return s.write(txn, next)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("updating %s: %w", s.key, err)
}

func (s *BadgerEntryStore) read(txn *badger.Txn) ([]domain.TimeEntry, error) {
	item, err := txn.Get(s.key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []domain.TimeEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.key, err)
	}
	var entries []domain.TimeEntry
	err = item.Value(func(val []byte) error {
		entries, err = decodeEntries(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BadgerEntryStore) write(txn *badger.Txn, entries []domain.TimeEntry) error {
	blob, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := txn.Set(s.key, blob); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}

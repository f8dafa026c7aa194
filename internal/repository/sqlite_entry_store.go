package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/visotime/internal/db"
	"github.com/alexanderramin/visotime/internal/domain"
)

// SQLiteEntryStore implements EntryStore on the kv_store table.
type SQLiteEntryStore struct {
	db  db.DBTX
	uow db.UnitOfWork
	key string
}

// NewSQLiteEntryStore creates a store that reads through database and
// writes through uow.
func NewSQLiteEntryStore(database db.DBTX, uow db.UnitOfWork) *SQLiteEntryStore {
	return &SQLiteEntryStore{db: database, uow: uow, key: StorageKey}
}

func (s *SQLiteEntryStore) Load(ctx context.Context) ([]domain.TimeEntry, error) {
	return s.load(ctx, s.db)
}

func (s *SQLiteEntryStore) Save(ctx context.Context, entries []domain.TimeEntry) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.save(ctx, tx, entries)
	})
}

func (s *SQLiteEntryStore) Update(ctx context.Context, fn UpdateFunc) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return s.save(ctx, tx, next)
	})
}

func (s *SQLiteEntryStore) load(ctx context.Context, q db.DBTX) ([]domain.TimeEntry, error) {
	var blob []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, s.key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.TimeEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.key, err)
	}
	return decodeEntries(blob)
}

func (s *SQLiteEntryStore) save(ctx context.Context, q db.DBTX, entries []domain.TimeEntry) error {
	blob, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, blob, nowUTC())
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}

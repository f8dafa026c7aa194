package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/visotime/internal/db"
	"github.com/alexanderramin/visotime/internal/repository"
	"github.com/dgraph-io/badger/v4"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestStore returns an entry store on a fresh in-memory SQLite database.
func NewTestStore(t *testing.T) *repository.SQLiteEntryStore {
	t.Helper()
	database := NewTestDB(t)
	return repository.NewSQLiteEntryStore(database, NewTestUoW(database))
}

// NewTestBadger opens an in-memory Badger store closed at test end.
func NewTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	bdb, err := db.OpenBadger("", nil)
	if err != nil {
		t.Fatalf("failed to open badger: %v", err)
	}
	t.Cleanup(func() {
		bdb.Close()
	})
	return bdb
}

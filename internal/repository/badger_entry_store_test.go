package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/repository"
	"github.com/alexanderramin/visotime/internal/testutil"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerEntryStore_UsesStorageKey(t *testing.T) {
	ctx := context.Background()
	bdb := testutil.NewTestBadger(t)
	store := repository.NewBadgerEntryStore(bdb)
	require.NoError(t, store.Save(ctx, []domain.TimeEntry{testutil.NewTestEntry(testutil.WithID("x"))}))

	var raw []byte
	require.NoError(t, bdb.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(repository.StorageKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	}))
	assert.Contains(t, string(raw), `"id":"x"`)
	assert.Contains(t, string(raw), `"projectId"`)
}

func TestBadgerEntryStore_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	bdb := testutil.NewTestBadger(t)
	require.NoError(t, bdb.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(repository.StorageKey), []byte(`"nope"`))
	}))

	_, err := repository.NewBadgerEntryStore(bdb).Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrCorruptBlob)
}

func TestBadgerEntryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := repository.NewBadgerEntryStore(testutil.NewTestBadger(t))

	const writers = 3
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Update(ctx, func(current []domain.TimeEntry) ([]domain.TimeEntry, error) {
				return append(current, testutil.NewTestEntry()), nil
			})
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	// Every successful update is visible; a conflict never loses a write silently.
	assert.Len(t, got, writers-failures)
}

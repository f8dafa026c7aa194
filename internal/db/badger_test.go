package db

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBadger_InMemory(t *testing.T) {
	bdb, err := OpenBadger("", nil)
	require.NoError(t, err)
	defer bdb.Close()

	require.NoError(t, bdb.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("v"))
	}))

	var got []byte
	require.NoError(t, bdb.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("k"))
		if err != nil {
			return err
		}
		got, err = item.ValueCopy(nil)
		return err
	}))
	assert.Equal(t, []byte("v"), got)
}

func TestOpenBadger_OnDisk(t *testing.T) {
	dir := t.TempDir()

	bdb, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, bdb.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("persisted"))
	}))
	require.NoError(t, bdb.Close())

	bdb, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer bdb.Close()

	err = bdb.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("k"))
		return err
	})
	assert.NoError(t, err)
}

func TestBadgerLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := badgerLogger{l: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))}

	l.Infof("compaction %d\n", 1)
	assert.Empty(t, buf.String())

	l.Warningf("disk %s", "slow")
	assert.Contains(t, buf.String(), "disk slow")
	assert.Contains(t, buf.String(), "component=badger")
}

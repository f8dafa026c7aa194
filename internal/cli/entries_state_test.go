package cli

import (
	"errors"
	"testing"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(entries ...domain.TimeEntry) *entriesState {
	s := &entriesState{}
	s.beginLoad()
	s.finishLoad(app.Ok(entries), nil)
	return s
}

func TestEntriesState_Load(t *testing.T) {
	e := testutil.NewTestEntry()

	t.Run("success replaces entries", func(t *testing.T) {
		s := &entriesState{}
		s.beginLoad()
		assert.True(t, s.listLoading)

		s.finishLoad(app.Ok([]domain.TimeEntry{e}), nil)
		assert.False(t, s.listLoading)
		assert.True(t, s.loaded)
		assert.Equal(t, []domain.TimeEntry{e}, s.entries)
	})

	t.Run("failed result keeps last known list", func(t *testing.T) {
		s := loadedState(e)
		s.beginLoad()
		s.finishLoad(app.Fail[[]domain.TimeEntry](""), nil)

		assert.False(t, s.listLoading)
		assert.Equal(t, msgFetchFailed, s.errMsg)
		assert.Equal(t, []domain.TimeEntry{e}, s.entries)
	})

	t.Run("failed result message is shown verbatim", func(t *testing.T) {
		s := &entriesState{}
		s.finishLoad(app.Fail[[]domain.TimeEntry]("storage offline"), nil)
		assert.Equal(t, "storage offline", s.errMsg)
	})

	t.Run("error maps to generic message", func(t *testing.T) {
		s := loadedState(e)
		s.finishLoad(app.Result[[]domain.TimeEntry]{}, errors.New("disk gone"))
		assert.Equal(t, msgUnexpected, s.errMsg)
		assert.Len(t, s.entries, 1)
	})
}

func TestEntriesState_Create(t *testing.T) {
	t.Run("begin clears previous error", func(t *testing.T) {
		s := &entriesState{errMsg: "old"}
		s.beginCreate()
		assert.True(t, s.formSubmitting)
		assert.Empty(t, s.errMsg)
	})

	t.Run("success asks for reload without local append", func(t *testing.T) {
		s := loadedState()
		s.beginCreate()
		reload := s.finishCreate(app.Ok(testutil.NewTestEntry()), nil)

		assert.True(t, reload)
		assert.False(t, s.formSubmitting)
		assert.Empty(t, s.entries)
	})

	t.Run("service message shown verbatim", func(t *testing.T) {
		s := loadedState()
		s.beginCreate()
		msg := "Daily limit exceeded. You have 4h remaining for 2024-01-15."
		reload := s.finishCreate(app.Fail[domain.TimeEntry](msg), nil)

		assert.False(t, reload)
		assert.False(t, s.formSubmitting)
		assert.Equal(t, msg, s.errMsg)
	})

	t.Run("empty failure falls back", func(t *testing.T) {
		s := loadedState()
		s.finishCreate(app.Fail[domain.TimeEntry](""), nil)
		assert.Equal(t, msgCreateFailed, s.errMsg)
	})

	t.Run("error is a connection failure", func(t *testing.T) {
		s := loadedState()
		s.finishCreate(app.Result[domain.TimeEntry]{}, errors.New("boom"))
		assert.Equal(t, msgConnectFailed, s.errMsg)
	})
}

func TestEntriesState_OptimisticDelete(t *testing.T) {
	a := testutil.NewTestEntry(testutil.WithDescription("a"))
	b := testutil.NewTestEntry(testutil.WithDescription("b"))
	c := testutil.NewTestEntry(testutil.WithDescription("c"))

	t.Run("removes immediately and keeps an independent snapshot", func(t *testing.T) {
		s := loadedState(a, b, c)
		snapshot := s.removeOptimistic(b.ID)

		assert.Equal(t, []domain.TimeEntry{a, c}, s.entries)
		assert.Equal(t, []domain.TimeEntry{a, b, c}, snapshot)

		s.entries[0].Description = "mutated"
		assert.Equal(t, "a", snapshot[0].Description)
	})

	t.Run("success leaves the removal in place", func(t *testing.T) {
		s := loadedState(a, b, c)
		snapshot := s.removeOptimistic(b.ID)
		s.finishDelete(snapshot, app.Ok(struct{}{}), nil)

		assert.Equal(t, []domain.TimeEntry{a, c}, s.entries)
		assert.Empty(t, s.errMsg)
	})

	t.Run("failed result restores the exact snapshot", func(t *testing.T) {
		s := loadedState(a, b, c)
		snapshot := s.removeOptimistic(b.ID)
		s.finishDelete(snapshot, app.Fail[struct{}]("nope"), nil)

		assert.Equal(t, []domain.TimeEntry{a, b, c}, s.entries)
		assert.Equal(t, msgDeleteFailed, s.errMsg)
	})

	t.Run("error restores the exact snapshot", func(t *testing.T) {
		s := loadedState(a, b, c)
		snapshot := s.removeOptimistic(a.ID)
		s.finishDelete(snapshot, app.Result[struct{}]{}, errors.New("offline"))

		assert.Equal(t, []domain.TimeEntry{a, b, c}, s.entries)
		assert.Equal(t, msgDeleteFailed, s.errMsg)
	})

	t.Run("unknown id is a no-op removal", func(t *testing.T) {
		s := loadedState(a)
		snapshot := s.removeOptimistic("missing")
		assert.Equal(t, snapshot, s.entries)
	})
}

func TestEntriesState_DismissError(t *testing.T) {
	s := &entriesState{errMsg: msgDeleteFailed}
	s.dismissError()
	assert.Empty(t, s.errMsg)
}

func TestEntriesState_Groups(t *testing.T) {
	s := loadedState(
		testutil.NewTestEntry(testutil.WithDate("2024-01-15"), testutil.WithHours(2)),
		testutil.NewTestEntry(testutil.WithDate("2024-01-14"), testutil.WithHours(1)),
		testutil.NewTestEntry(testutil.WithDate("2024-01-15"), testutil.WithHours(3.5)),
	)

	groups := s.groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-01-15", groups[0].Date)
	assert.InDelta(t, 5.5, groups[0].TotalHours, 1e-9)
	assert.Equal(t, "2024-01-14", groups[1].Date)
}

package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListEntries struct {
	res app.Result[[]domain.TimeEntry]
	err error
}

func (s *stubListEntries) ListAll(context.Context) (app.Result[[]domain.TimeEntry], error) {
	return s.res, s.err
}

type stubCreateEntry struct {
	res app.Result[domain.TimeEntry]
	err error
}

func (s *stubCreateEntry) Create(context.Context, domain.NewTimeEntry) (app.Result[domain.TimeEntry], error) {
	return s.res, s.err
}

type stubDeleteEntry struct {
	res   app.Result[struct{}]
	err   error
	calls []string
}

func (s *stubDeleteEntry) Delete(_ context.Context, id string) (app.Result[struct{}], error) {
	s.calls = append(s.calls, id)
	return s.res, s.err
}

// --- history ---

func TestTUI_InitialLoadShowsGroupedHistory(t *testing.T) {
	app := testApp(t)
	seedEntry(t, app, "2024-01-15", domain.ProjectClientA, 2, "API review")
	seedEntry(t, app, "2024-01-14", domain.ProjectPersonal, 1.5, "Reading")

	d := NewTestDriver(t, app)

	out := d.View()
	assert.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Contains(t, out, "API review")
	assert.Contains(t, out, "Reading")
	assert.Contains(t, out, "Client A")
	assert.Contains(t, out, "Grand Total:")
	assert.Contains(t, out, "3.50h")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "22h left")
	assert.NotContains(t, out, "Loading entries")
}

func TestTUI_EmptyHistory(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Contains(t, d.View(), "No entries yet")
	assert.True(t, d.History().entries.loaded)
	assert.False(t, d.History().entries.listLoading)
}

func TestTUI_DeleteRemovesSelectedEntry(t *testing.T) {
	app := testApp(t)
	keep := seedEntry(t, app, "2024-01-15", domain.ProjectClientA, 2, "stays")
	seedEntry(t, app, "2024-01-14", domain.ProjectClientA, 1, "goes away")

	d := NewTestDriver(t, app)
	d.PressDown()
	assert.Equal(t, 1, d.History().cursor)

	d.PressKey('d')

	assert.NotContains(t, d.View(), "goes away")
	assert.Contains(t, d.View(), "stays")
	assert.Equal(t, 0, d.History().cursor, "cursor clamps to the remaining entry")

	entries := listAll(t, app)
	require.Len(t, entries, 1)
	assert.Equal(t, keep.ID, entries[0].ID)
}

func TestTUI_FailedDeleteRollsBack(t *testing.T) {
	tests := []struct {
		name string
		stub *stubDeleteEntry
	}{
		{"error", &stubDeleteEntry{err: errors.New("offline")}},
		{"failed result", &stubDeleteEntry{res: app.Fail[struct{}]("nope")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp(t)
			e := seedEntry(t, a, "2024-01-15", domain.ProjectClientA, 2, "survivor")
			a.DeleteEntry = tt.stub

			d := NewTestDriver(t, a)
			before := d.History().entries.entries

			d.PressKey('d')

			require.Equal(t, []string{e.ID}, tt.stub.calls)
			assert.Equal(t, before, d.History().entries.entries)
			assert.Contains(t, d.View(), "survivor")
			assert.Contains(t, d.View(), "Failed to delete entry")

			d.PressKey('x')
			assert.NotContains(t, d.View(), "Failed to delete entry")
		})
	}
}

func TestTUI_RefreshFailureKeepsLastKnownList(t *testing.T) {
	a := testApp(t)
	e := seedEntry(t, a, "2024-01-15", domain.ProjectClientA, 2, "cached")
	list := &stubListEntries{res: app.Ok([]domain.TimeEntry{e})}
	a.ListEntries = list

	d := NewTestDriver(t, a)
	require.Contains(t, d.View(), "cached")

	list.res, list.err = app.Result[[]domain.TimeEntry]{}, errors.New("db locked")
	d.PressKey('r')

	assert.Contains(t, d.View(), "cached")
	assert.Contains(t, d.View(), "An unexpected error occurred")
	assert.False(t, d.History().entries.listLoading)

	list.res, list.err = app.Fail[[]domain.TimeEntry](""), nil
	d.PressKey('r')
	assert.Contains(t, d.View(), "Failed to fetch entries")
}

// --- create ---

func TestTUI_SubmitCreatesAndReloads(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Send(entrySubmitMsg{candidate: domain.NewTimeEntry{
		Date: "2024-01-15", ProjectID: domain.ProjectPersonal, Hours: 1.5, Description: "Planning",
	}})

	assert.False(t, d.History().entries.formSubmitting)
	assert.Contains(t, d.View(), "Planning")
	require.Len(t, listAll(t, app), 1)
}

func TestTUI_SubmitOverDailyLimitShowsServiceMessage(t *testing.T) {
	app := testApp(t)
	seedEntry(t, app, "2024-01-15", domain.ProjectClientA, 20, "long day")
	d := NewTestDriver(t, app)

	d.Send(entrySubmitMsg{candidate: domain.NewTimeEntry{
		Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: 5, Description: "too much",
	}})

	assert.Contains(t, d.View(), "Daily limit exceeded. You have 4h remaining for 2024-01-15.")
	assert.NotContains(t, d.View(), "too much")
	assert.Len(t, listAll(t, app), 1)
}

func TestTUI_CreateErrorShowsConnectionMessage(t *testing.T) {
	a := testApp(t)
	a.CreateEntry = &stubCreateEntry{err: errors.New("socket closed")}
	d := NewTestDriver(t, a)

	d.Send(entrySubmitMsg{candidate: domain.NewTimeEntry{
		Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: 1, Description: "x",
	}})

	assert.Contains(t, d.View(), "Failed to connect to the server")
	assert.False(t, d.History().entries.formSubmitting)
}

// --- entry form ---

func TestTUI_AddOpensFormAndEscCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	out := d.View()
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "Project")
	assert.Contains(t, out, "Hours")
	assert.Contains(t, out, "Description")

	d.PressEsc()
	assert.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_FormSubmitFlow(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.State().Draft = form.Entry{
		Date: "2024-01-14", ProjectID: domain.ProjectClientA, Hours: "2.5", Description: "Pairing",
	}

	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.PressEnter() // date
	d.PressEnter() // project
	d.PressEnter() // hours
	d.PressEnter() // description

	assert.Equal(t, ViewHistory, d.ActiveViewID())
	entries := listAll(t, app)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pairing", entries[0].Description)
	assert.Equal(t, 2.5, entries[0].Hours)
	assert.Equal(t, "2024-01-14", entries[0].Date)
	assert.Contains(t, d.View(), "Pairing")

	assert.Equal(t, form.Entry{Date: "2024-01-14"}, d.State().Draft, "draft resets but keeps the date")
}

func TestTUI_FormWithErrorsReopens(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.State().Draft = form.Entry{
		Date: "2024-01-15", ProjectID: domain.ProjectClientA, Hours: "abc", Description: "x",
	}

	d.PressKey('a')
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "Hours must be a number")
	assert.Equal(t, "abc", d.State().Draft.Hours)
	assert.Empty(t, listAll(t, app))
}

func TestTUI_CtrlCQuits(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImportEntries struct {
	err   error
	calls int
}

func (s *stubImportEntries) Import(context.Context, []domain.NewTimeEntry) (app.Result[[]domain.TimeEntry], error) {
	s.calls++
	return app.Result[[]domain.TimeEntry]{}, s.err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// --- entry export ---

func TestEntryExport_Stdout(t *testing.T) {
	a := testApp(t)
	seedEntry(t, a, "2024-01-15", domain.ProjectClientA, 2, "API review")

	out, err := executeCmd(t, a, "entry", "export")
	require.NoError(t, err)

	f, err := importer.ParseImportFile([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10:00:00Z", f.ExportedAt)
	require.Len(t, f.Entries, 1)
	assert.Equal(t, "API review", f.Entries[0].Description)
}

func TestEntryExportImport_RoundTrip(t *testing.T) {
	src := testApp(t)
	seedEntry(t, src, "2024-01-15", domain.ProjectClientA, 2, "API review")
	seedEntry(t, src, "2024-01-14", domain.ProjectPersonal, 1.5, "Reading")
	path := filepath.Join(t.TempDir(), "export.json")

	out, err := executeCmd(t, src, "entry", "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 entries")

	dst := testApp(t)
	out, err = executeCmd(t, dst, "entry", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 entries")

	got := listAll(t, dst)
	require.Len(t, got, 2)
	assert.Equal(t, "API review", got[0].Description)
	assert.Equal(t, "Reading", got[1].Description)
}

// --- entry import ---

func TestEntryImport_ValidationErrorsSaveNothing(t *testing.T) {
	a := testApp(t)
	path := writeFile(t, `[
		{"date": "2024-01-15", "projectId": "CLIENT_A", "hours": 2, "description": "ok"},
		{"date": "15/01/2024", "projectId": "NOPE", "hours": 0, "description": ""}
	]`)

	_, err := executeCmd(t, a, "entry", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (4 errors):")
	assert.Contains(t, err.Error(), `entries[1].projectId: unknown project "NOPE"`)
	assert.Empty(t, listAll(t, a))
}

func TestEntryImport_DailyLimitAgainstStoredEntries(t *testing.T) {
	a := testApp(t)
	seedEntry(t, a, "2024-01-15", domain.ProjectClientA, 22, "long day")
	path := writeFile(t, `{"version": 1, "entries": [
		{"date": "2024-01-15", "projectId": "PERSONAL", "hours": 3, "description": "evening"}
	]}`)

	_, err := executeCmd(t, a, "entry", "import", path)
	require.Error(t, err)
	assert.Equal(t, "Daily limit exceeded. You have 2h remaining for 2024-01-15.", err.Error())
	assert.Len(t, listAll(t, a), 1)
}

func TestEntryImport_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "entry", "import", filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEntryImport_UseCaseError(t *testing.T) {
	a := testApp(t)
	stub := &stubImportEntries{err: errors.New("disk full")}
	a.ImportEntries = stub
	path := writeFile(t, `[{"date": "2024-01-15", "projectId": "CLIENT_A", "hours": 1, "description": "x"}]`)

	_, err := executeCmd(t, a, "entry", "import", path)
	require.Error(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, err.Error(), "disk full")
}

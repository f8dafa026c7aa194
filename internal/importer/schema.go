package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
)

// FormatVersion is the version written by NewExportFile.
const FormatVersion = 1

// ImportFile is the top-level JSON structure for an entry import. Files
// written by "visotime entry export" have this shape.
type ImportFile struct {
	Version    int           `json:"version"`
	ExportedAt string        `json:"exportedAt,omitempty"`
	Entries    []EntryImport `json:"entries"`
}

// EntryImport is one entry in the import file. Its fields use the stored
// layout. ID and CreatedAt are carried for reference only: imported
// entries get fresh values.
type EntryImport struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date"`
	ProjectID   string   `json:"projectId"`
	Hours       *float64 `json:"hours"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"createdAt,omitempty"`
}

// LoadImportFile reads and parses an entry import file.
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportFile(data)
}

// ParseImportFile parses an ImportFile. A bare JSON array of entries, as
// found under the storage key, is accepted as a version 1 file.
func ParseImportFile(data []byte) (*ImportFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []EntryImport
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		return &ImportFile{Version: FormatVersion, Entries: entries}, nil
	}

	var f ImportFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &f, nil
}

// NewExportFile wraps entries for "visotime entry export".
func NewExportFile(entries []domain.TimeEntry, now time.Time) *ImportFile {
	f := &ImportFile{
		Version:    FormatVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Entries:    make([]EntryImport, 0, len(entries)),
	}
	for _, e := range entries {
		hours := e.Hours
		f.Entries = append(f.Entries, EntryImport{
			ID:          e.ID,
			Date:        e.Date,
			ProjectID:   e.ProjectID,
			Hours:       &hours,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return f
}

package importer

import (
	"strings"

	"github.com/alexanderramin/visotime/internal/domain"
)

// Convert transforms a validated ImportFile into create candidates, in
// file order. Call ValidateImportFile first; Convert assumes the file is
// valid.
func Convert(f *ImportFile) []domain.NewTimeEntry {
	out := make([]domain.NewTimeEntry, 0, len(f.Entries))
	for _, e := range f.Entries {
		var hours float64
		if e.Hours != nil {
			hours = *e.Hours
		}
		out = append(out, domain.NewTimeEntry{
			Date:        e.Date,
			ProjectID:   e.ProjectID,
			Hours:       hours,
			Description: strings.TrimSpace(e.Description),
		})
	}
	return out
}

package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/visotime/internal/domain"
)

// Rules parameterizes ValidateImportFile.
type Rules struct {
	MaxDailyHours float64
	// Projects, when set, restricts projectId to known catalog ids.
	Projects *domain.Catalog
}

// ValidateImportFile checks the file for errors before conversion.
// Returns a slice of all validation errors found. Hours already stored are
// not known here; the entry service checks the cap against them.
func ValidateImportFile(f *ImportFile, rules Rules) []error {
	var errs []error

	if f.Version > FormatVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (newest known is %d)", f.Version, FormatVersion))
	}
	if len(f.Entries) == 0 {
		errs = append(errs, fmt.Errorf("entries: file contains no entries"))
		return errs
	}

	perDate := make(map[string]float64)
	var dates []string
	for i := range f.Entries {
		entryErrs := validateEntry(i, &f.Entries[i], rules)
		errs = append(errs, entryErrs...)
		if len(entryErrs) > 0 {
			continue
		}
		e := f.Entries[i]
		if _, seen := perDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		perDate[e.Date] += *e.Hours
	}

	limit := rules.maxDailyHours()
	for _, date := range dates {
		if perDate[date] > limit {
			errs = append(errs, fmt.Errorf("%s: %sh imported, over the %sh daily limit",
				date, formatFloat(perDate[date]), formatFloat(limit)))
		}
	}

	return errs
}

func validateEntry(i int, e *EntryImport, rules Rules) []error {
	var errs []error
	prefix := fmt.Sprintf("entries[%d]", i)

	if e.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if !domain.ValidDate(e.Date) {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, e.Date))
	}

	if e.ProjectID == "" {
		errs = append(errs, fmt.Errorf("%s.projectId is required", prefix))
	} else if rules.Projects != nil && !rules.Projects.Has(e.ProjectID) {
		errs = append(errs, fmt.Errorf("%s.projectId: unknown project %q", prefix, e.ProjectID))
	}

	switch {
	case e.Hours == nil:
		errs = append(errs, fmt.Errorf("%s.hours is required", prefix))
	case math.IsNaN(*e.Hours) || *e.Hours <= 0:
		errs = append(errs, fmt.Errorf("%s.hours must be greater than 0", prefix))
	}

	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, fmt.Errorf("%s.description is required", prefix))
	}

	return errs
}

func (r Rules) maxDailyHours() float64 {
	if r.MaxDailyHours <= 0 {
		return domain.DefaultMaxDailyHours
	}
	return r.MaxDailyHours
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

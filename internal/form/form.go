// Package form validates raw entry input before it is sent to the service.
//
// Every rule here has a stricter counterpart in the entry service, which
// stays the authority. The daily cap is not checked: it depends on stored
// entries this package never sees.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/visotime/internal/domain"
)

// Field names used as Errors keys.
const (
	FieldDate        = "date"
	FieldProject     = "projectId"
	FieldHours       = "hours"
	FieldDescription = "description"
)

// Entry is the raw, unparsed input of the entry form.
type Entry struct {
	Date        string
	ProjectID   string
	Hours       string
	Description string
}

// Rules parameterizes validation.
type Rules struct {
	MaxHours float64
	// Projects, when set, restricts ProjectID to known catalog ids.
	Projects *domain.Catalog
}

// DefaultRules uses the default daily maximum and no catalog restriction.
func DefaultRules() Rules {
	return Rules{MaxHours: domain.DefaultMaxDailyHours}
}

// Errors maps a field name to its message.
type Errors map[string]string

// Empty reports whether submission may proceed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Validate checks every field and returns all problems found.
func Validate(in Entry, rules Rules) Errors {
	errs := Errors{}

	switch {
	case in.Date == "":
		errs[FieldDate] = "Date is required"
	case !domain.ValidDate(in.Date):
		errs[FieldDate] = "Date must be YYYY-MM-DD"
	}

	switch {
	case in.ProjectID == "":
		errs[FieldProject] = "Project is required"
	case rules.Projects != nil && !rules.Projects.Has(in.ProjectID):
		errs[FieldProject] = "Unknown project"
	}

	if strings.TrimSpace(in.Description) == "" {
		errs[FieldDescription] = "Description is required"
	}

	hours, ok := parseHours(in.Hours)
	switch {
	case !ok:
		errs[FieldHours] = "Hours must be a number"
	case hours <= 0:
		errs[FieldHours] = "Hours must be greater than 0"
	case hours > rules.maxHours():
		errs[FieldHours] = fmt.Sprintf("Max %s hours", strconv.FormatFloat(rules.maxHours(), 'f', -1, 64))
	}

	return errs
}

// Candidate converts validated input into a create candidate. It must only
// be called when Validate returned no errors.
func (in Entry) Candidate() domain.NewTimeEntry {
	hours, _ := parseHours(in.Hours)
	return domain.NewTimeEntry{
		Date:        in.Date,
		ProjectID:   in.ProjectID,
		Hours:       hours,
		Description: strings.TrimSpace(in.Description),
	}
}

// Reset clears everything but the date, which is usually reused for the
// next entry.
func (in Entry) Reset() Entry {
	return Entry{Date: in.Date}
}

func (r Rules) maxHours() float64 {
	if r.MaxHours <= 0 {
		return domain.DefaultMaxDailyHours
	}
	return r.MaxHours
}

func parseHours(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, false
	}
	return h, true
}

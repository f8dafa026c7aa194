package domain

import "time"

// DateLayout is the calendar date format used for TimeEntry.Date.
const DateLayout = "2006-01-02"

// DefaultMaxDailyHours is the total number of hours that may be logged
// against a single date.
const DefaultMaxDailyHours = 24.0

// TimeEntry is a single logged block of work. The JSON field names are the
// persisted layout and must not change.
type TimeEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ProjectID   string  `json:"projectId"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
	CreatedAt   int64   `json:"createdAt"`
}

// NewTimeEntry is a create candidate: a TimeEntry without the fields the
// service assigns.
type NewTimeEntry struct {
	Date        string
	ProjectID   string
	Hours       float64
	Description string
}

// CreatedTime returns CreatedAt as a time.Time.
func (e TimeEntry) CreatedTime() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// DailyGroup is the derived view of all entries sharing a date.
type DailyGroup struct {
	Date       string
	Entries    []TimeEntry
	TotalHours float64
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

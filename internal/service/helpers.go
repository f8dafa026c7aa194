package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
)

// sortNewestFirst orders entries by date descending, then by creation time
// descending. Dates compare as strings, which is chronological for
// YYYY-MM-DD.
func sortNewestFirst(entries []domain.TimeEntry) {
	slices.SortStableFunc(entries, func(a, b domain.TimeEntry) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
}

// hoursOn sums the hours already logged against date.
func hoursOn(entries []domain.TimeEntry, date string) float64 {
	var total float64
	for _, e := range entries {
		if e.Date == date {
			total += e.Hours
		}
	}
	return total
}

// missingFields reports whether any required field is absent. Zero and NaN
// hours count as absent.
func missingFields(c domain.NewTimeEntry) bool {
	return c.Date == "" || c.ProjectID == "" || c.Description == "" ||
		c.Hours == 0 || math.IsNaN(c.Hours)
}

// rejectCandidate returns the failure message for an invalid candidate, or
// "" when it may be stored.
func rejectCandidate(c domain.NewTimeEntry) string {
	switch {
	case missingFields(c):
		return MsgFieldsRequired
	case c.Hours <= 0:
		return MsgHoursPositive
	case !domain.ValidDate(c.Date):
		return MsgInvalidDate
	}
	return ""
}

// formatHours renders hours in the shortest exact decimal form: 4, 3.5, 0.25.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

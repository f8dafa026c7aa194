// Package aggregate derives the per-day view of a flat entry list.
package aggregate

import (
	"cmp"
	"math"
	"slices"

	"github.com/alexanderramin/visotime/internal/domain"
)

// GroupByDate partitions entries by exact date string. Groups are ordered
// by date descending; entries keep their input order within a group.
func GroupByDate(entries []domain.TimeEntry) []domain.DailyGroup {
	index := make(map[string]int)
	var groups []domain.DailyGroup
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, domain.DailyGroup{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].TotalHours += e.Hours
	}
	slices.SortStableFunc(groups, func(a, b domain.DailyGroup) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return groups
}

// GrandTotal sums the totals of all groups.
func GrandTotal(groups []domain.DailyGroup) float64 {
	var total float64
	for _, g := range groups {
		total += g.TotalHours
	}
	return total
}

// RemainingHours is the capacity left on a day that already has total
// hours logged. It never goes below zero.
func RemainingHours(total, limit float64) float64 {
	return math.Max(0, limit-total)
}

// CapUsage is the fraction of the daily cap that total consumes, clamped
// to [0, 1].
func CapUsage(total, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, total/limit))
}

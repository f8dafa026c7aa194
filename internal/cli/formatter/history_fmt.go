package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
)

// EntryHours renders a single entry's hours as logged: "2.5h", "8h".
func EntryHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// EmptyHistory is shown when nothing has been logged yet.
func EmptyHistory() string {
	return Bold("No entries yet") + "\n" + Dim("Start tracking your time by adding an entry.")
}

// GrandTotal renders the all-days total line.
func GrandTotal(total float64) string {
	return "Grand Total: " + StyleBlue.Bold(true).Render(FormatHours(total))
}

// DayHeader renders the heading of one day: its date, total and cap gauge.
func DayHeader(g domain.DailyGroup, limit float64, now time.Time) string {
	usage := 0.0
	if limit > 0 {
		usage = g.TotalHours / limit
	}
	label := HumanDay(g.Date, now)
	if label != g.Date {
		label += " " + Dim(g.Date)
	}
	return StyleHeader.Render("▸ ") + Bold(label) + "  " +
		Dim("Total: ") + FormatHours(g.TotalHours) + "  " +
		RenderCompactBar(usage, 12)
}

// FormatHistory renders the grouped history for the CLI. Groups are
// printed in the order given.
func FormatHistory(groups []domain.DailyGroup, grandTotal float64, catalog *domain.Catalog, limit float64, now time.Time) string {
	if len(groups) == 0 {
		return EmptyHistory() + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("History") + "  " + GrandTotal(grandTotal) + "\n\n")

	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(DayHeader(g, limit, now) + "\n")

		rows := make([][]string, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []string{
				StyleBlue.Render(catalog.Name(e.ProjectID)),
				EntryHours(e.Hours),
				Truncate(e.Description, 48),
				Dim(ShortID(e.ID)),
			})
		}
		b.WriteString(indent(RenderAlignedTable(
			[]string{"PROJECT", "HOURS", "DESCRIPTION", "ID"},
			[]Align{AlignLeft, AlignRight},
			rows,
		), "  "))
	}
	return b.String()
}

// FormatProjects renders the project catalog.
func FormatProjects(catalog *domain.Catalog) string {
	rows := make([][]string, 0)
	for _, p := range catalog.Projects() {
		rows = append(rows, []string{p.ID, p.Name})
	}
	return RenderTable([]string{"ID", "NAME"}, rows)
}

// FieldErrors renders form validation errors in the given field order.
func FieldErrors(errs map[string]string, order []string) string {
	var b strings.Builder
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			b.WriteString(Failure(Bold(f)+": "+msg) + "\n")
		}
	}
	return b.String()
}

// EntryCreated confirms a new entry.
func EntryCreated(e domain.TimeEntry, catalog *domain.Catalog) string {
	return Success("Logged " + Bold(EntryHours(e.Hours)) + " on " +
		StyleBlue.Render(catalog.Name(e.ProjectID)) + " for " + e.Date + " " + Dim("("+ShortID(e.ID)+")"))
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" || l == "\n" {
			b.WriteString(l)
			continue
		}
		b.WriteString(prefix + l)
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatHours renders an hours value with two decimals, e.g. "5.50h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}

// HumanDay renders a YYYY-MM-DD date relative to now: "Today",
// "Yesterday", or "Mon, Jan 15 2024". Unparseable dates are returned as-is.
func HumanDay(date string, now time.Time) string {
	d, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
	if err != nil {
		return date
	}
	today := now.Format(domain.DateLayout)
	switch date {
	case today:
		return "Today"
	case now.AddDate(0, 0, -1).Format(domain.DateLayout):
		return "Yesterday"
	}
	return d.Format("Mon, Jan 2 2006")
}

// Truncate shortens s to at most n visible runes, marking the cut with an
// ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// ShortID returns the first 8 characters of an id for compact display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCapGauge renders how much of the daily cap a day uses, e.g.
// "[██████░░] 18.00h/24h". The bar turns yellow, then red, as the day fills.
func RenderCapGauge(total, limit float64, width int) string {
	usage := 0.0
	if limit > 0 {
		usage = total / limit
	}
	return fmt.Sprintf("[%s] %s/%sh", CapStyle(usage).Render(bar(usage, width)), FormatHours(total), trimFloat(limit))
}

// RenderCompactBar renders just the blocks with no brackets or label.
func RenderCompactBar(usage float64, width int) string {
	return CapStyle(usage).Render(bar(usage, width))
}

func bar(pct float64, width int) string {
	if math.IsNaN(pct) {
		pct = 0
	}
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

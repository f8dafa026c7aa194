package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// hoursValue is a pflag.Value for --hours. It accepts a decimal number of
// hours ("2.5") or a Go duration ("2h30m", "45m").
type hoursValue struct {
	hours float64
	set   bool
}

var _ pflag.Value = (*hoursValue)(nil)

func (h *hoursValue) String() string {
	if !h.set {
		return ""
	}
	return strconv.FormatFloat(h.hours, 'f', -1, 64)
}

func (h *hoursValue) Set(s string) error {
	v, err := parseHoursArg(s)
	if err != nil {
		return err
	}
	h.hours = v
	h.set = true
	return nil
}

func (h *hoursValue) Type() string { return "hours" }

func parseHoursArg(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("hours must not be empty")
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid hours %q", s)
		}
		return v, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hours %q: use a number like 2.5 or a duration like 2h30m", s)
	}
	return d.Hours(), nil
}

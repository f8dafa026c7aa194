package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursValue_Set(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.5", 2.5},
		{"8", 8},
		{" 1.25 ", 1.25},
		{"2h30m", 2.5},
		{"45m", 0.75},
		{"90m", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var h hoursValue
			require.NoError(t, h.Set(tt.in))
			assert.InDelta(t, tt.want, h.hours, 1e-9)
		})
	}
}

func TestHoursValue_SetRejects(t *testing.T) {
	for _, in := range []string{"", "lots", "NaN", "Inf", "2x"} {
		t.Run(in, func(t *testing.T) {
			var h hoursValue
			assert.Error(t, h.Set(in))
			assert.Empty(t, h.String(), "unset value renders empty")
		})
	}
}

func TestHoursValue_String(t *testing.T) {
	var h hoursValue
	require.NoError(t, h.Set("1h15m"))
	assert.Equal(t, "1.25", h.String())
	assert.Equal(t, "hours", h.Type())
}

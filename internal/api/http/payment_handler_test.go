package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountCents(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		tests := []struct {
			in   string
			want int64
		}{
			{"1250000.00", 125_000_000},
			{"5", 500},
			{"5.2", 520},
			{"5.25", 525},
			{"5.256", 525}, // extra precision truncates
			{"0.05", 5},
			{"", 0},
		}
		for _, tt := range tests {
			got, err := parseAmountCents(tt.in)
			assert.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	})

	t.Run("Negative amounts rejected", func(t *testing.T) {
		for _, in := range []string{"-5", "-5.25", "-0.01"} {
			_, err := parseAmountCents(in)
			assert.Error(t, err, "input %q", in)
		}
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		for _, in := range []string{"abc", "5.x", "1,250"} {
			_, err := parseAmountCents(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

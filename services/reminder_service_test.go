package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-24", true},  // Monday
		{"2026-08-28", true},  // Friday
		{"2026-08-29", false}, // Saturday
		{"2026-08-30", false}, // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, isWeekday(d))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 35, 12, 999, time.UTC)
	got := startOfDay(now)

	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), got)
}

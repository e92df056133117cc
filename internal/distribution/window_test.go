package distribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "midweek",
			now:  time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC), // Friday
			want: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),  // previous Tuesday
		},
		{
			name: "exactly at reset",
			now:  time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), // Tuesday 08:00
			want: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "reset day before reset hour",
			now:  time.Date(2025, 6, 10, 7, 59, 59, 0, time.UTC), // Tuesday 07:59
			want: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),    // a week earlier
		},
		{
			name: "reset day after reset hour",
			now:  time.Date(2025, 6, 10, 8, 0, 1, 0, time.UTC),
			want: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "monday late evening",
			now:  time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC), // Monday
			want: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC input normalized",
			now:  time.Date(2025, 6, 10, 16, 30, 0, 0, time.FixedZone("KST", 9*3600)), // 07:30 UTC Tuesday
			want: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.now)
			assert.True(t, got.Equal(tt.want), "WeekStart(%v) = %v, want %v", tt.now, got, tt.want)
		})
	}
}

func TestWeekStartNeverAfterNow(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14*24; i++ {
		now := start.Add(time.Duration(i) * time.Hour)
		ws := WeekStart(now)
		assert.False(t, ws.After(now), "WeekStart(%v) = %v is in the future", now, ws)
		assert.Equal(t, time.Tuesday, ws.Weekday())
		assert.Equal(t, 8, ws.Hour())
	}
}

func TestWeekStartConstantWithinWindow(t *testing.T) {
	anchor := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	want := WeekStart(anchor)
	for i := 0; i < 7*24; i++ {
		now := anchor.Add(time.Duration(i)*time.Hour - time.Second)
		if !now.Before(anchor) && now.Before(anchor.AddDate(0, 0, 7)) {
			assert.True(t, WeekStart(now).Equal(want), "window not constant at %v", now)
		}
	}
}

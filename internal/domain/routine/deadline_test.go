package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinDeadline(t *testing.T) {
	tests := []struct {
		name    string
		timeStr string
		nowHour int
		nowMin  int
		want    bool
	}{
		{name: "at scheduled time", timeStr: "08:00 AM", nowHour: 8, nowMin: 0, want: true},
		{name: "inside window", timeStr: "08:00 AM", nowHour: 8, nowMin: 30, want: true},
		{name: "at exact deadline", timeStr: "08:00 AM", nowHour: 9, nowMin: 0, want: true},
		{name: "just past deadline", timeStr: "08:00 AM", nowHour: 9, nowMin: 1, want: false},
		{name: "before scheduled time", timeStr: "08:00 AM", nowHour: 7, nowMin: 59, want: false},
		{name: "24-hour form", timeStr: "20:00", nowHour: 20, nowMin: 30, want: true},
		{name: "24-hour past deadline", timeStr: "20:00", nowHour: 21, nowMin: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := bizTime(tt.nowHour, tt.nowMin)
			assert.Equal(t, tt.want, WithinDeadline(tt.timeStr, now))
		})
	}
}

func TestWithinDeadlineFailsClosedOnBadTime(t *testing.T) {
	assert.False(t, WithinDeadline("whenever", bizTime(12, 0)))
	assert.False(t, WithinDeadline("", bizTime(12, 0)))
}

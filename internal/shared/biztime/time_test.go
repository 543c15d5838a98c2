package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "12-hour padded", input: "08:00 AM", hour: 8, minute: 0},
		{name: "12-hour unpadded", input: "8:00 AM", hour: 8, minute: 0},
		{name: "12-hour evening", input: "09:30 PM", hour: 21, minute: 30},
		{name: "lowercase meridiem", input: "08:00 am", hour: 8, minute: 0},
		{name: "surrounding whitespace", input: "  08:00 AM  ", hour: 8, minute: 0},
		{name: "24-hour fallback", input: "20:00", hour: 20, minute: 0},
		{name: "24-hour morning", input: "07:45", hour: 7, minute: 45},
		{name: "garbage", input: "around eightish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.minute, got.Minute())
		})
	}
}

func TestSessionTimeOn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ref := time.Date(2025, 3, 10, 15, 30, 45, 0, loc)

	at, err := SessionTimeOn(ref, "08:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, loc), at)

	_, err = SessionTimeOn(ref, "not a time")
	assert.Error(t, err)
}

func TestFormatMinute(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	// Zero-padded so the key matches stored session times exactly.
	assert.Equal(t, "08:00 AM", FormatMinute(time.Date(2025, 3, 10, 8, 0, 0, 0, loc)))
	assert.Equal(t, "09:30 PM", FormatMinute(time.Date(2025, 3, 10, 21, 30, 0, 0, loc)))
	assert.Equal(t, "12:00 AM", FormatMinute(time.Date(2025, 3, 10, 0, 0, 0, 0, loc)))
}

func TestFormatMinuteRoundTripsParse(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ref := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)

	key := FormatMinute(ref)
	parsed, err := ParseSessionClock(key)
	require.NoError(t, err)
	assert.Equal(t, ref.Hour(), parsed.Hour())
	assert.Equal(t, ref.Minute(), parsed.Minute())
}

func TestWeekdayName(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	// 2025-03-10 is a Monday.
	assert.Equal(t, "Monday", WeekdayName(time.Date(2025, 3, 10, 0, 0, 0, 0, loc)))
	assert.Equal(t, "Sunday", WeekdayName(time.Date(2025, 3, 16, 0, 0, 0, 0, loc)))
}

func TestInitReportsOffsetConflict(t *testing.T) {
	// Location self-initializes with the default offset; the first
	// initialization wins.
	_, offset := time.Now().In(Location()).Zone()
	assert.Equal(t, DefaultOffsetHours*3600, offset)

	assert.NoError(t, Init(DefaultOffsetHours))
	assert.Error(t, Init(DefaultOffsetHours+1))
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	clock := FixedClock{T: pinned}
	assert.Equal(t, pinned, clock.Now())
}

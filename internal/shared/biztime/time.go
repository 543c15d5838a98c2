// Package biztime provides the fixed civil-offset clock used for all
// routine scheduling decisions. Sessions are scheduled against wall-clock
// times in a single business offset (UTC+7 by default); storage keeps the
// raw time strings and civil dates, never instants.
//
// Design principles:
// - Session times are civil clock strings ("08:00 AM"), not instants
// - "Now" always flows through a Clock so tests can pin it
// - The offset is fixed, not a tzdata zone; there is no DST in scope
package biztime

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultOffsetHours is the default business offset east of UTC.
const DefaultOffsetHours = 7

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	bizOffsetHours  int
)

func setLocation(offsetHours int) {
	bizLocationOnce.Do(func() {
		bizOffsetHours = offsetHours
		name := fmt.Sprintf("UTC%+d", offsetHours)
		bizLocation = time.FixedZone(name, offsetHours*3600)
	})
}

// Init fixes the business offset. Should be called once at startup, before
// anything touches Location. Zero is a valid offset; callers that want the
// default pass DefaultOffsetHours. The first initialization wins, including
// Location's self-initialization; asking for a different offset afterwards
// reports the conflict instead of silently keeping the old zone.
func Init(offsetHours int) error {
	setLocation(offsetHours)
	if offsetHours != bizOffsetHours {
		return fmt.Errorf("business offset already fixed at UTC%+d, cannot change to UTC%+d",
			bizOffsetHours, offsetHours)
	}
	return nil
}

// Location returns the business offset location.
// If not explicitly initialized, automatically initializes with UTC+7.
func Location() *time.Location {
	setLocation(DefaultOffsetHours)
	return bizLocation
}

// Now returns the current time in the business offset.
func Now() time.Time {
	return time.Now().In(Location())
}

// Clock supplies "now" in the business offset. Interactive handlers and
// batch jobs take a Clock instead of calling time.Now so behavior is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the wall-clock time in the business offset.
func (SystemClock) Now() time.Time {
	return Now()
}

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

const (
	// Layout12Hour matches "8:00 AM" and "08:00 AM".
	Layout12Hour = "3:04 PM"
	// Layout24Hour matches "20:00".
	Layout24Hour = "15:04"
	// layoutMinuteKey is the canonical zero-padded render of a session minute.
	layoutMinuteKey = "03:04 PM"
)

// ParseSessionClock parses a session time-of-day string. The 12-hour form
// is tried first, then the 24-hour fallback. Surrounding whitespace and
// meridiem case are tolerated. The returned time carries only hour and
// minute; its date components are the zero value's.
func ParseSessionClock(s string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range []string{Layout12Hour, Layout24Hour} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized session time %q", s)
}

// SessionTimeOn anchors a session time-of-day string to the calendar day of
// ref, in ref's location.
func SessionTimeOn(ref time.Time, s string) (time.Time, error) {
	clock, err := ParseSessionClock(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), clock.Hour(), clock.Minute(), 0, 0, ref.Location()), nil
}

// FormatMinute renders t as the canonical session minute key ("08:00 AM").
// Notification matching compares this key against stored session times.
func FormatMinute(t time.Time) string {
	return t.Format(layoutMinuteKey)
}

// WeekdayName returns the English weekday name of t ("Monday" ... "Sunday").
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

package routine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bizTime(hour, minute int) time.Time {
	loc := time.FixedZone("UTC+7", 7*3600)
	return time.Date(2025, 3, 10, hour, minute, 0, 0, loc)
}

func session(timeStr string, status SessionStatus, stepCount int) Session {
	steps := make([]Step, 0, stepCount)
	for i := 0; i < stepCount; i++ {
		steps = append(steps, Step{Name: "step", Order: i + 1})
	}
	return Session{Time: timeStr, Status: status, Steps: steps}
}

func TestDayIs(t *testing.T) {
	d := Day{Weekday: "Monday"}
	assert.True(t, d.Is("Monday"))
	assert.True(t, d.Is("monday"))
	assert.False(t, d.Is("Tuesday"))
}

func TestFindSession(t *testing.T) {
	d := Day{Sessions: []Session{
		session("08:00 AM", StatusPending, 1),
		session("09:00 PM", StatusPending, 1),
	}}

	assert.NotNil(t, d.FindSession("08:00 AM"))
	assert.NotNil(t, d.FindSession("  08:00 AM  "))
	assert.Nil(t, d.FindSession("10:00 AM"))
}

func TestApplyUpdateKeepsExplicitDone(t *testing.T) {
	d := Day{Weekday: "Monday"}
	now := bizTime(12, 0)

	d.ApplyUpdate([]Session{session("08:00 AM", StatusDone, 2)}, now)

	require.Len(t, d.Sessions, 1)
	assert.Equal(t, StatusDone, d.Sessions[0].Status)
}

func TestApplyUpdatePreservesStoredStatus(t *testing.T) {
	d := Day{Weekday: "Monday", Sessions: []Session{
		session("08:00 AM", StatusDone, 2),
		session("09:00 PM", StatusNotDone, 1),
	}}
	now := bizTime(12, 0)

	// Client re-submits with stale pending; the stored outcome must survive.
	d.ApplyUpdate([]Session{
		session("08:00 AM", StatusPending, 2),
		session("09:00 PM", StatusPending, 1),
	}, now)

	require.Len(t, d.Sessions, 2)
	assert.Equal(t, StatusDone, d.Sessions[0].Status)
	assert.Equal(t, StatusNotDone, d.Sessions[1].Status)
}

func TestApplyUpdateNewPastSessionStartsNotDone(t *testing.T) {
	d := Day{Weekday: "Monday"}
	now := bizTime(12, 0)

	d.ApplyUpdate([]Session{session("08:00 AM", StatusPending, 1)}, now)

	require.Len(t, d.Sessions, 1)
	assert.Equal(t, StatusNotDone, d.Sessions[0].Status)
}

func TestApplyUpdateNewFutureSessionKeepsClientStatus(t *testing.T) {
	d := Day{Weekday: "Monday"}
	now := bizTime(12, 0)

	d.ApplyUpdate([]Session{
		session("09:00 PM", StatusPending, 1),
		session("10:00 PM", "", 1),
	}, now)

	require.Len(t, d.Sessions, 2)
	assert.Equal(t, StatusPending, d.Sessions[0].Status)
	assert.Equal(t, StatusPending, d.Sessions[1].Status)
}

func TestApplyUpdateUnparseableTimeKeepsClientStatus(t *testing.T) {
	d := Day{Weekday: "Monday"}
	now := bizTime(12, 0)

	d.ApplyUpdate([]Session{session("whenever", StatusPending, 1)}, now)

	require.Len(t, d.Sessions, 1)
	assert.Equal(t, StatusPending, d.Sessions[0].Status)
}

func TestApplyUpdateRemovesAbsentSessions(t *testing.T) {
	d := Day{Weekday: "Monday", Sessions: []Session{
		session("08:00 AM", StatusDone, 1),
		session("09:00 PM", StatusPending, 1),
	}}
	now := bizTime(7, 0)

	d.ApplyUpdate([]Session{session("09:00 PM", StatusPending, 1)}, now)

	require.Len(t, d.Sessions, 1)
	assert.Equal(t, "09:00 PM", d.Sessions[0].Time)
}

func TestApplyUpdateSortsByParsedTime(t *testing.T) {
	d := Day{Weekday: "Monday"}
	now := bizTime(6, 0)

	d.ApplyUpdate([]Session{
		session("09:00 PM", StatusPending, 1),
		session("08:00 AM", StatusPending, 1),
		session("20:00", StatusPending, 1),
	}, now)

	require.Len(t, d.Sessions, 3)
	assert.Equal(t, "08:00 AM", d.Sessions[0].Time)
	assert.Equal(t, "20:00", d.Sessions[1].Time)
	assert.Equal(t, "09:00 PM", d.Sessions[2].Time)
}

func TestSortSessionsUnparseableLast(t *testing.T) {
	d := Day{Sessions: []Session{
		session("gibberish", StatusPending, 1),
		session("08:00 AM", StatusPending, 1),
	}}

	d.SortSessions()

	assert.Equal(t, "08:00 AM", d.Sessions[0].Time)
	assert.Equal(t, "gibberish", d.Sessions[1].Time)
}

package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	d := DateOf(time.Date(2025, 3, 10, 23, 59, 0, 0, loc))
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 10}, d)
}

func TestDateAddDays(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 10}

	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 11}, d.AddDays(1))
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 9}, d.AddDays(-1))

	// Month and year boundaries.
	assert.Equal(t, Date{Year: 2025, Month: time.April, Day: 1}, Date{Year: 2025, Month: time.March, Day: 31}.AddDays(1))
	assert.Equal(t, Date{Year: 2024, Month: time.December, Day: 31}, Date{Year: 2025, Month: time.January, Day: 1}.AddDays(-1))
}

func TestDateOrdering(t *testing.T) {
	earlier := Date{Year: 2025, Month: time.March, Day: 9}
	later := Date{Year: 2025, Month: time.March, Day: 10}

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.False(t, earlier.After(earlier))
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 5}
	assert.Equal(t, "2025-03-05", d.String())
}

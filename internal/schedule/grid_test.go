package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mio-salon/booking/internal/model"
)

func testGrid() Grid {
	return Grid{StartHour: 9, EndHour: 20, HourHeight: 80}
}

func TestGridHours(t *testing.T) {
	hours := testGrid().Hours()
	require.Len(t, hours, 12)
	assert.Equal(t, 9, hours[0])
	assert.Equal(t, 20, hours[len(hours)-1])
}

func TestTimeToOffset(t *testing.T) {
	g := testGrid()

	assert.Equal(t, 0.0, g.TimeToOffset(at(9, 0)))
	assert.Equal(t, 80.0, g.TimeToOffset(at(10, 0)))
	assert.Equal(t, 120.0, g.TimeToOffset(at(10, 30)))

	// Out-of-window times are mapped, not rejected.
	assert.Equal(t, -80.0, g.TimeToOffset(at(8, 0)))
	assert.Equal(t, 1000.0, g.TimeToOffset(at(21, 30)))
}

func TestTimeToOffsetMonotonic(t *testing.T) {
	g := testGrid()
	prev := g.TimeToOffset(at(9, 0))
	for minutes := 15; minutes <= 11*60; minutes += 15 {
		cur := g.TimeToOffset(at(9, 0).Add(time.Duration(minutes) * time.Minute))
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestDurationToHeight(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 120.0, g.DurationToHeight(at(10, 0), at(11, 30)))
	assert.Equal(t, 40.0, g.DurationToHeight(at(10, 0), at(10, 30)))
	assert.Equal(t, 0.0, g.DurationToHeight(at(10, 0), at(10, 0)))
}

func TestSlotClickToTime(t *testing.T) {
	g := testGrid()
	day := time.Date(2026, time.September, 15, 17, 42, 13, 999, time.Local)

	got := g.SlotClickToTime(day, 13)
	assert.Equal(t, time.Date(2026, time.September, 15, 13, 0, 0, 0, time.Local), got)
}

func TestDayBucket(t *testing.T) {
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.Local)
	lateSameDay := apt("late", "1", at(23, 59), at(23, 59).Add(30*time.Minute))
	nextDay := apt("next", "1",
		time.Date(2026, time.September, 16, 0, 1, 0, 0, time.Local),
		time.Date(2026, time.September, 16, 1, 0, 0, 0, time.Local))

	bucket := DayBucket([]model.Appointment{lateSameDay, nextDay}, day)
	require.Len(t, bucket, 1)
	assert.Equal(t, "late", bucket[0].ID)

	// The bucket is a calendar-day filter, so the time-of-day of the query
	// argument is irrelevant.
	noon := day.Add(12 * time.Hour)
	assert.Equal(t, bucket, DayBucket([]model.Appointment{lateSameDay, nextDay}, noon))
}

func TestDayBucketEmpty(t *testing.T) {
	assert.Empty(t, DayBucket(nil, time.Now()))
}

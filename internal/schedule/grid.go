package schedule

import (
	"time"

	"github.com/mio-salon/booking/internal/model"
)

// Grid maps appointment time ranges to pixel geometry within a daily work
// window and maps grid cell clicks back to calendar times. All methods are
// deterministic and side-effect free.
type Grid struct {
	// StartHour and EndHour bound the rendered work window; both hour
	// labels are shown, so a 9–20 window renders twelve rows.
	StartHour int
	EndHour   int
	// HourHeight is the pixel height of one hour row.
	HourHeight float64
}

// Hours returns the inclusive row labels of the work window.
func (g Grid) Hours() []int {
	hours := make([]int, 0, g.EndHour-g.StartHour+1)
	for h := g.StartHour; h <= g.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// TimeToOffset returns the vertical pixel offset of t within the grid.
// Times outside the work window are not clamped; the caller renders only
// within the grid's row bounds.
func (g Grid) TimeToOffset(t time.Time) float64 {
	minutesFromStart := float64((t.Hour()-g.StartHour)*60 + t.Minute())
	return minutesFromStart / 60 * g.HourHeight
}

// DurationToHeight returns the pixel height of the [start, end) block.
func (g Grid) DurationToHeight(start, end time.Time) float64 {
	return end.Sub(start).Minutes() / 60 * g.HourHeight
}

// SlotClickToTime resolves a click on an hour row to a concrete time on the
// selected day, at the top of the hour.
func (g Grid) SlotClickToTime(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// DayBucket filters to appointments whose start falls on the same calendar
// date as day, in local civil time. Insensitive to the time-of-day of day.
func DayBucket(appointments []model.Appointment, day time.Time) []model.Appointment {
	var out []model.Appointment
	for _, app := range appointments {
		if sameDay(app.StartTime, day) {
			out = append(out, app)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package schedule

import (
	"sort"
	"time"

	"github.com/mio-salon/booking/internal/model"
)

// ListFilter selects which slice of the collection the dashboard list shows.
type ListFilter string

const (
	FilterYesterday ListFilter = "yesterday"
	FilterToday     ListFilter = "today"
	FilterTomorrow  ListFilter = "tomorrow"
	FilterAll       ListFilter = "all"
)

// FilterAppointments applies a dashboard list filter relative to now and
// returns the matches ordered by start time.
func FilterAppointments(appointments []model.Appointment, filter ListFilter, now time.Time) []model.Appointment {
	var out []model.Appointment
	for _, app := range appointments {
		if matchesFilter(app, filter, now) {
			out = append(out, app)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func matchesFilter(app model.Appointment, filter ListFilter, now time.Time) bool {
	switch filter {
	case FilterYesterday:
		return sameDay(app.StartTime, now.AddDate(0, 0, -1))
	case FilterToday:
		return sameDay(app.StartTime, now)
	case FilterTomorrow:
		return sameDay(app.StartTime, now.AddDate(0, 0, 1))
	default:
		return true
	}
}

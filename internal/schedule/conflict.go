// Package schedule holds the pure scheduling logic: the per-resource overlap
// rule and the time-grid geometry. Nothing here touches the record store.
package schedule

import "github.com/mio-salon/booking/internal/model"

// HasConflict reports whether the candidate's time range overlaps an existing
// appointment for the same resource. Intervals are half-open, so back-to-back
// bookings do not conflict. The candidate's own id is skipped, which lets an
// update be checked against the collection it is already part of. Different
// resources never conflict.
func HasConflict(candidate model.Appointment, existing []model.Appointment) bool {
	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if other.ResourceID != candidate.ResourceID {
			continue
		}
		if candidate.StartTime.Before(other.EndTime) && candidate.EndTime.After(other.StartTime) {
			return true
		}
	}
	return false
}

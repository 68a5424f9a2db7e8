package model

import (
	"time"
)

// Appointment is a booked time block for one staff resource and one client.
// The interval is half-open: [StartTime, EndTime).
type Appointment struct {
	ID          string      `json:"id"`
	ResourceID  string      `json:"resourceId"`
	ClientName  string      `json:"clientName"`
	ClientPhone string      `json:"clientPhone"`
	Service     ServiceKind `json:"serviceType"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Notes       string      `json:"notes,omitempty"`
}

// AppointmentInput carries the fields of a new appointment before an id is
// assigned.
type AppointmentInput struct {
	ResourceID  string      `json:"resourceId" validate:"required"`
	ClientName  string      `json:"clientName" validate:"required"`
	ClientPhone string      `json:"clientPhone" validate:"required"`
	Service     ServiceKind `json:"serviceType" validate:"required"`
	StartTime   time.Time   `json:"startTime" validate:"required"`
	EndTime     time.Time   `json:"endTime" validate:"required,gtfield=StartTime"`
	Notes       string      `json:"notes" validate:"max=1000"`
}

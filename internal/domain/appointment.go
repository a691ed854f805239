package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a one-hour pool visit reservation
type Appointment struct {
	ID            uuid.UUID
	ClientID      int64
	ScheduleDate  time.Time
	StartTime     types.TimeString
	DurationHours int
	Status        AppointmentStatus

	CreatedAt time.Time
}

// IsActive returns true if the appointment has not been cancelled
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled.
// Cancellation is terminal: a cancelled appointment never becomes active again
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusActive
}

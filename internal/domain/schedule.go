package domain

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// ScheduleDay represents the working schedule for a single calendar date.
// Absence of a record means no schedule is defined for that date
type ScheduleDay struct {
	ID          int64
	Date        time.Time
	IsHoliday   bool
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	MaxCapacity int

	CreatedAt time.Time
}

// WorkingHours returns the ordered sequence of bookable hours for the day:
// starting at OpeningTime, stepping by one hour, while strictly before
// ClosingTime (the half-open interval [opening, closing))
func (s *ScheduleDay) WorkingHours() []types.TimeString {
	hours := make([]types.TimeString, 0)
	current := s.OpeningTime

	for current.IsBefore(s.ClosingTime) {
		hours = append(hours, current)

		next, err := current.AddMinutes(MinutesPerSlot)
		if err != nil {
			break
		}
		current = next
	}

	return hours
}

// IsWithinWorkingHours returns true if hour falls inside [opening, closing)
func (s *ScheduleDay) IsWithinWorkingHours(hour types.TimeString) bool {
	return !hour.IsBefore(s.OpeningTime) && hour.IsBefore(s.ClosingTime)
}

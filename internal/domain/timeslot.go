package domain

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// TimeSlot represents the occupancy counter of a single one-hour slot.
// The composite key is (ScheduleDate, Hour); a missing row means zero bookings
type TimeSlot struct {
	ScheduleDate time.Time
	Hour         types.TimeString
	BookedCount  int
}

// AvailableSpots returns how many seats remain given the day capacity
func (s *TimeSlot) AvailableSpots(maxCapacity int) int {
	available := maxCapacity - s.BookedCount
	if available < 0 {
		return 0
	}
	return available
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull(maxCapacity int) bool {
	return s.BookedCount >= maxCapacity
}

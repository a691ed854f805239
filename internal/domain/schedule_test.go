package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

func TestScheduleDay_WorkingHours(t *testing.T) {
	day := &ScheduleDay{
		OpeningTime: "08:00",
		ClosingTime: "12:00",
		MaxCapacity: 10,
	}

	hours := day.WorkingHours()
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "11:00"}, hours)
}

func TestScheduleDay_WorkingHours_FullDay(t *testing.T) {
	day := &ScheduleDay{
		OpeningTime: DefaultOpeningTime,
		ClosingTime: DefaultClosingTime,
	}

	hours := day.WorkingHours()
	assert.Len(t, hours, 14)
	assert.Equal(t, types.TimeString("08:00"), hours[0])
	assert.Equal(t, types.TimeString("21:00"), hours[len(hours)-1])
}

func TestScheduleDay_WorkingHours_UntilMidnight(t *testing.T) {
	day := &ScheduleDay{
		OpeningTime: "22:00",
		ClosingTime: "24:00",
	}

	hours := day.WorkingHours()
	assert.Equal(t, []types.TimeString{"22:00", "23:00"}, hours)
}

func TestScheduleDay_IsWithinWorkingHours(t *testing.T) {
	day := &ScheduleDay{
		OpeningTime: "08:00",
		ClosingTime: "22:00",
	}

	assert.True(t, day.IsWithinWorkingHours("08:00"))
	assert.True(t, day.IsWithinWorkingHours("21:00"))

	// Интервал полуоткрытый: час закрытия уже не рабочий
	assert.False(t, day.IsWithinWorkingHours("22:00"))
	assert.False(t, day.IsWithinWorkingHours("07:00"))
	assert.False(t, day.IsWithinWorkingHours("23:00"))
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	active := &Appointment{Status: StatusActive}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, active.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.True(t, active.IsActive())
	assert.True(t, cancelled.IsCancelled())
}

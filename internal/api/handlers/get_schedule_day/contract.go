package get_schedule_day

import (
	"context"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.ScheduleDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

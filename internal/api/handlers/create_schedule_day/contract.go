package create_schedule_day

import (
	"context"

	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
)

type ScheduleService interface {
	Create(ctx context.Context, req *models.CreateScheduleDayRequest) (*models.ScheduleDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	Create(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleDay, error)
	ExistsByDate(ctx context.Context, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

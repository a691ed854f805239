package get_booked_slots

import (
	"context"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleDay, error)
}

// TimeSlotRepository интерфейс репозитория счётчиков занятости слотов
type TimeSlotRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error)
}

// TransactionManager управляет транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

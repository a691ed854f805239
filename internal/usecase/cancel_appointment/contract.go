package cancel_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByIDAndClient(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
}

// TimeSlotRepository интерфейс репозитория счётчиков занятости слотов
type TimeSlotRepository interface {
	Decrement(ctx context.Context, date time.Time, hour types.TimeString) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

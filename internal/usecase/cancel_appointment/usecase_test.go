package cancel_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	appointmentRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/appointment"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

type fakeAppointmentRepo struct {
	getByIDAndClientFn func(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error)
	updateStatusFn     func(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
}

func (f *fakeAppointmentRepo) GetByIDAndClient(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
	return f.getByIDAndClientFn(ctx, id, clientID)
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

type fakeTimeSlotRepo struct {
	decrementFn func(ctx context.Context, date time.Time, hour types.TimeString) (int64, error)
}

func (f *fakeTimeSlotRepo) Decrement(ctx context.Context, date time.Time, hour types.TimeString) (int64, error) {
	return f.decrementFn(ctx, date, hour)
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCancel_Success(t *testing.T) {
	orderID := uuid.New()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	var gotStatus domain.AppointmentStatus
	var decrements int

	uc := NewUseCase(
		&fakeAppointmentRepo{
			getByIDAndClientFn: func(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
				return &domain.Appointment{
					ID:           orderID,
					ClientID:     clientID,
					ScheduleDate: date,
					StartTime:    "14:00",
					Status:       domain.StatusActive,
				}, nil
			},
			updateStatusFn: func(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
				gotStatus = status
				return nil
			},
		},
		&fakeTimeSlotRepo{
			decrementFn: func(ctx context.Context, d time.Time, hour types.TimeString) (int64, error) {
				decrements++
				assert.Equal(t, date, d)
				assert.Equal(t, types.TimeString("14:00"), hour)
				return 1, nil
			},
		},
		&fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ClientID: 1, OrderID: orderID})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, domain.StatusCancelled, gotStatus)
	assert.Equal(t, 1, decrements)
}

func TestCancel_NotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{
			getByIDAndClientFn: func(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
				return nil, appointmentRepo.ErrAppointmentNotFound
			},
		},
		&fakeTimeSlotRepo{},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ClientID: 1, OrderID: uuid.New()})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	var decrements int

	uc := NewUseCase(
		&fakeAppointmentRepo{
			getByIDAndClientFn: func(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
				return &domain.Appointment{ID: id, ClientID: clientID, Status: domain.StatusCancelled}, nil
			},
		},
		&fakeTimeSlotRepo{
			decrementFn: func(ctx context.Context, date time.Time, hour types.TimeString) (int64, error) {
				decrements++
				return 1, nil
			},
		},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ClientID: 1, OrderID: uuid.New()})

	// Повторная отмена не трогает счётчик слота
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, 0, decrements)
}

func TestCancel_ZeroCounterIsNotAnError(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{
			getByIDAndClientFn: func(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
				return &domain.Appointment{ID: id, ClientID: clientID, StartTime: "14:00", Status: domain.StatusActive}, nil
			},
			updateStatusFn: func(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
				return nil
			},
		},
		&fakeTimeSlotRepo{
			decrementFn: func(ctx context.Context, date time.Time, hour types.TimeString) (int64, error) {
				// Счётчик уже на нуле, UPDATE не затронул строк
				return 0, nil
			},
		},
		&fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ClientID: 1, OrderID: uuid.New()})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCancel_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeTimeSlotRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 0, OrderID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ClientID: 1, OrderID: uuid.Nil})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

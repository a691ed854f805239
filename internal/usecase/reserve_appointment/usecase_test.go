package reserve_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	appointmentRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/appointment"
	clientRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/client"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

type fakeClientRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Client, error)
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return f.getByIDFn(ctx, id)
}

type fakeScheduleRepo struct {
	getByDateFn func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error)
}

func (f *fakeScheduleRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
	return f.getByDateFn(ctx, date)
}

type fakeTimeSlotRepo struct {
	ensureRowFn           func(ctx context.Context, date time.Time, hour types.TimeString) error
	incrementIfCapacityFn func(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error)
}

func (f *fakeTimeSlotRepo) EnsureRow(ctx context.Context, date time.Time, hour types.TimeString) error {
	return f.ensureRowFn(ctx, date, hour)
}

func (f *fakeTimeSlotRepo) IncrementIfCapacity(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error) {
	return f.incrementIfCapacityFn(ctx, date, hour, maxCapacity)
}

type fakeAppointmentRepo struct {
	createFn                    func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	findActiveByClientAndDateFn func(ctx context.Context, clientID int64, date time.Time) (*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return f.createFn(ctx, appt)
}

func (f *fakeAppointmentRepo) FindActiveByClientAndDate(ctx context.Context, clientID int64, date time.Time) (*domain.Appointment, error) {
	return f.findActiveByClientAndDateFn(ctx, clientID, date)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Стенд: расписание 08:00-22:00 на 10 мест, клиент id=1 существует,
// активных записей нет, место свободно
func newTestUseCase() *UseCase {
	uc := NewUseCase(
		&fakeClientRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Client, error) {
				return &domain.Client{ID: id, Name: "Иван", Phone: "+79990000001"}, nil
			},
		},
		&fakeScheduleRepo{
			getByDateFn: func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
				return &domain.ScheduleDay{
					ID:          1,
					Date:        date,
					OpeningTime: "08:00",
					ClosingTime: "22:00",
					MaxCapacity: 10,
				}, nil
			},
		},
		&fakeTimeSlotRepo{
			ensureRowFn: func(ctx context.Context, date time.Time, hour types.TimeString) error {
				return nil
			},
			incrementIfCapacityFn: func(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error) {
				return 1, nil
			},
		},
		&fakeAppointmentRepo{
			findActiveByClientAndDateFn: func(ctx context.Context, clientID int64, date time.Time) (*domain.Appointment, error) {
				return nil, appointmentRepo.ErrAppointmentNotFound
			},
			createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
				appt.ID = uuid.New()
				appt.CreatedAt = time.Now()
				return appt, nil
			},
		},
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestReserve_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.OrderID)
	assert.Equal(t, int64(1), resp.ClientID)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
}

func TestReserve_TimeNotHourAligned(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestReserve_DateInPast(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 9, 30, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestReserve_SameDayIsNotPast(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 1, 14, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
}

func TestReserve_SameDayPastHourIsPast(t *testing.T) {
	uc := newTestUseCase()

	// Сейчас 12:00, запись на 08:00 того же дня уже недоступна
	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestReserve_CurrentHourIsNotPast(t *testing.T) {
	uc := newTestUseCase()
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)}

	// Текущий незавершённый час ещё можно забронировать
	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
}

func TestReserve_ClientNotFound(t *testing.T) {
	uc := newTestUseCase()
	uc.clientRepo = &fakeClientRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Client, error) {
			return nil, clientRepo.ErrClientNotFound
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 42,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestReserve_NoSchedule(t *testing.T) {
	uc := newTestUseCase()
	uc.scheduleRepo = &fakeScheduleRepo{
		getByDateFn: func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
			return nil, scheduleRepo.ErrScheduleNotFound
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNoSchedule)
}

func TestReserve_Holiday(t *testing.T) {
	uc := newTestUseCase()
	uc.scheduleRepo = &fakeScheduleRepo{
		getByDateFn: func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
			return &domain.ScheduleDay{ID: 1, Date: date, IsHoliday: true}, nil
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrHoliday)
}

func TestReserve_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase()

	// До открытия
	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Час закрытия уже не рабочий
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 22, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Последний рабочий час
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 21, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestReserve_DuplicateBooking(t *testing.T) {
	uc := newTestUseCase()
	uc.appointmentRepo = &fakeAppointmentRepo{
		findActiveByClientAndDateFn: func(ctx context.Context, clientID int64, date time.Time) (*domain.Appointment, error) {
			return &domain.Appointment{ID: uuid.New(), ClientID: clientID, Status: domain.StatusActive}, nil
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestReserve_SlotFull(t *testing.T) {
	uc := newTestUseCase()
	uc.timeSlotRepo = &fakeTimeSlotRepo{
		ensureRowFn: func(ctx context.Context, date time.Time, hour types.TimeString) error {
			return nil
		},
		incrementIfCapacityFn: func(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error) {
			// УСЛОВНЫЙ UPDATE не затронул строк: мест нет
			return 0, nil
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestReserve_InvalidInput(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 0,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ClientID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReserve_PassesCapacityToIncrement(t *testing.T) {
	uc := newTestUseCase()

	var gotCapacity int
	var gotHour types.TimeString
	uc.timeSlotRepo = &fakeTimeSlotRepo{
		ensureRowFn: func(ctx context.Context, date time.Time, hour types.TimeString) error {
			return nil
		},
		incrementIfCapacityFn: func(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error) {
			gotCapacity = maxCapacity
			gotHour = hour
			return 1, nil
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1,
		DateTime: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, gotCapacity)
	assert.Equal(t, types.TimeString("14:00"), gotHour)
}

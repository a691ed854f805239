package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
	"github.com/m0rzhov/PTS-TimetableService/pkg/ptr"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

type fakeScheduleRepo struct {
	createFn       func(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error)
	getByDateFn    func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error)
	existsByDateFn func(ctx context.Context, date time.Time) (bool, error)
}

func (f *fakeScheduleRepo) Create(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
	return f.createFn(ctx, day)
}

func (f *fakeScheduleRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
	return f.getByDateFn(ctx, date)
}

func (f *fakeScheduleRepo) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	if f.existsByDateFn == nil {
		return false, nil
	}
	return f.existsByDateFn(ctx, date)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestScheduleCreate_AppliesDefaults(t *testing.T) {
	var saved *domain.ScheduleDay

	svc := NewService(&fakeScheduleRepo{
		createFn: func(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
			day.ID = 1
			saved = day
			return day, nil
		},
	}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString(domain.DefaultOpeningTime), saved.OpeningTime)
	assert.Equal(t, types.TimeString(domain.DefaultClosingTime), saved.ClosingTime)
	assert.Equal(t, domain.DefaultMaxCapacity, saved.MaxCapacity)
	assert.Equal(t, int64(1), resp.ID)
}

func TestScheduleCreate_ExplicitValues(t *testing.T) {
	var saved *domain.ScheduleDay

	svc := NewService(&fakeScheduleRepo{
		createFn: func(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
			saved = day
			return day, nil
		},
	}, nopLogger{})

	opening := types.TimeString("10:00")
	closing := types.TimeString("18:00")

	_, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		OpeningTime: &opening,
		ClosingTime: &closing,
		MaxCapacity: ptr.Ptr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), saved.OpeningTime)
	assert.Equal(t, types.TimeString("18:00"), saved.ClosingTime)
	assert.Equal(t, 5, saved.MaxCapacity)
}

func TestScheduleCreate_AlreadyExists(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{
		existsByDateFn: func(ctx context.Context, date time.Time) (bool, error) {
			return true, nil
		},
	}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrScheduleAlreadyExists)
}

func TestScheduleCreate_DateRaceOnInsert(t *testing.T) {
	// Конкурентная вставка на ту же дату: unique constraint на дату
	// отдаётся как уже существующее расписание
	svc := NewService(&fakeScheduleRepo{
		createFn: func(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
			return nil, scheduleRepo.ErrScheduleExists
		},
	}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrScheduleAlreadyExists)
}

func TestScheduleCreate_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	// Дата обязательна
	_, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Закрытие должно быть позже открытия
	opening := types.TimeString("22:00")
	closing := types.TimeString("08:00")
	_, err = svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		OpeningTime: &opening,
		ClosingTime: &closing,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Вместимость в допустимых границах
	_, err = svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		MaxCapacity: ptr.Ptr(domain.MaxCapacityLimit + 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		MaxCapacity: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleCreate_HolidaySkipsTimeValidation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{
		createFn: func(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
			return day, nil
		},
	}, nopLogger{})

	// Для выходного дня времена не проверяются
	opening := types.TimeString("22:00")
	closing := types.TimeString("08:00")
	_, err := svc.Create(context.Background(), &models.CreateScheduleDayRequest{
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		IsHoliday:   true,
		OpeningTime: &opening,
		ClosingTime: &closing,
	})

	assert.NoError(t, err)
}

func TestScheduleGetByDate_NotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{
		getByDateFn: func(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
			return nil, scheduleRepo.ErrScheduleNotFound
		},
	}, nopLogger{})

	_, err := svc.GetByDate(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Create задает расписание на дату
// На одну дату допускается только одна запись расписания
func (s *Service) Create(ctx context.Context, req *models.CreateScheduleDayRequest) (*models.ScheduleDayResponse, error) {
	s.logger.Info("Create: creating schedule for date=%s, holiday=%t",
		req.Date.Format(domain.DateFormat), req.IsHoliday)

	day := req.ToDomainScheduleDay()

	if err := s.validateScheduleDay(day); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	exists, err := s.scheduleRepo.ExistsByDate(ctx, day.Date)
	if err != nil {
		s.logger.Error("Create: failed to check date %s: %v", day.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: schedule for date %s already exists", day.Date.Format(domain.DateFormat))
		return nil, ErrScheduleAlreadyExists
	}

	// Гонку между проверкой и вставкой закрывает unique constraint на дату
	created, err := s.scheduleRepo.Create(ctx, day)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleExists) {
			s.logger.Warn("Create: schedule for date %s already exists", req.Date.Format(domain.DateFormat))
			return nil, ErrScheduleAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created schedule id=%d for date=%s",
		created.ID, created.Date.Format(domain.DateFormat))
	return models.FromDomainScheduleDay(created), nil
}

// GetByDate получает расписание на дату
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.ScheduleDayResponse, error) {
	s.logger.Info("GetByDate: fetching schedule for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day, err := s.scheduleRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByDate: no schedule for date %s", date.Format(domain.DateFormat))
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByDate: repository error for date %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainScheduleDay(day), nil
}

// validateScheduleDay валидирует расписание на дату
// Для выходного дня времена и вместимость не проверяются
func (s *Service) validateScheduleDay(day *domain.ScheduleDay) error {
	if day.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if day.IsHoliday {
		return nil
	}

	if err := day.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
	}
	if err := day.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
	}

	if !day.OpeningTime.IsBefore(day.ClosingTime) {
		return fmt.Errorf("%w: closingTime must be after openingTime", ErrInvalidInput)
	}

	if day.MaxCapacity <= domain.MinCapacity || day.MaxCapacity > domain.MaxCapacityLimit {
		return fmt.Errorf("%w: maxCapacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacityLimit)
	}

	return nil
}

package reserve_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	appointmentRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/appointment"
	clientRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/client"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// UseCase use case для бронирования часового слота
type UseCase struct {
	clientRepo      ClientRepository
	scheduleRepo    ScheduleRepository
	timeSlotRepo    TimeSlotRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	scheduleRepo ScheduleRepository,
	timeSlotRepo TimeSlotRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		scheduleRepo:    scheduleRepo,
		timeSlotRepo:    timeSlotRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case бронирования слота
// Проверки занятости и вставка записи выполняются в сериализуемой транзакции,
// вместимость защищена условным UPDATE на стороне БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveAppointment: client=%d, datetime=%s",
		req.ClientID, req.DateTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно быть выровнено по началу часа
	if err := validateHourAligned(req.DateTime); err != nil {
		uc.logger.Warn("ReserveAppointment: time %s is not hour-aligned", req.DateTime.Format(domain.DateTimeFormat))
		return nil, err
	}

	// 3. Момент записи не в прошлом (прошедший час того же дня тоже недоступен)
	now := uc.timeProvider.Now()
	if isInPast(req.DateTime, now) {
		uc.logger.Warn("ReserveAppointment: datetime %s is in the past", req.DateTime.Format(domain.DateTimeFormat))
		return nil, ErrDateInPast
	}

	date := dateOnly(req.DateTime)
	hour := types.NewTimeString(req.DateTime)

	// 4. Проверяем существование клиента
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("ReserveAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("ReserveAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
	}

	// 5. Получаем расписание на дату
	schedule, err := uc.scheduleRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("ReserveAppointment: no schedule for date %s", date.Format(domain.DateFormat))
			return nil, ErrNoSchedule
		}
		uc.logger.Error("ReserveAppointment: failed to get schedule for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
	}

	// 6. Выходной день
	if schedule.IsHoliday {
		uc.logger.Warn("ReserveAppointment: date %s is a holiday", date.Format(domain.DateFormat))
		return nil, ErrHoliday
	}

	// 7. Рабочие часы: [открытие, закрытие)
	if !schedule.IsWithinWorkingHours(hour) {
		uc.logger.Warn("ReserveAppointment: time %s is outside working hours %s-%s",
			hour, schedule.OpeningTime, schedule.ClosingTime)
		return nil, ErrOutsideWorkingHours
	}

	var result *domain.Appointment

	// 8. Проверка дубля, занятие места и вставка записи — в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. У клиента не должно быть активной записи на эту дату (FOR UPDATE)
		_, err := uc.appointmentRepo.FindActiveByClientAndDate(txCtx, req.ClientID, date)
		if err == nil {
			uc.logger.Warn("ReserveAppointment: client id=%d already has an active appointment on %s",
				req.ClientID, date.Format(domain.DateFormat))
			return ErrDuplicateBooking
		}
		if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("ReserveAppointment: failed to check active appointment: %v", err)
			return fmt.Errorf("%w: failed to check active appointment: %w", ErrInternal, err)
		}

		// 8.2. Гарантируем наличие строки счётчика для слота
		if err := uc.timeSlotRepo.EnsureRow(txCtx, date, hour); err != nil {
			uc.logger.Error("ReserveAppointment: failed to ensure slot row: %v", err)
			return fmt.Errorf("%w: failed to ensure slot row: %w", ErrInternal, err)
		}

		// 8.3. Атомарно занимаем место: UPDATE проходит только при наличии свободных мест
		affected, err := uc.timeSlotRepo.IncrementIfCapacity(txCtx, date, hour, schedule.MaxCapacity)
		if err != nil {
			uc.logger.Error("ReserveAppointment: failed to increment slot: %v", err)
			return fmt.Errorf("%w: failed to increment slot: %w", ErrInternal, err)
		}
		if affected == 0 {
			uc.logger.Warn("ReserveAppointment: slot %s %s is full (capacity %d)",
				date.Format(domain.DateFormat), hour, schedule.MaxCapacity)
			return ErrSlotFull
		}

		// 8.4. Сохраняем запись
		// Откат транзакции вернёт и счётчик занятости
		appt := &domain.Appointment{
			ClientID:      req.ClientID,
			ScheduleDate:  date,
			StartTime:     hour,
			DurationHours: domain.DefaultDurationHours,
			Status:        domain.StatusActive,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateBooking) {
				return ErrDuplicateBooking
			}
			uc.logger.Error("ReserveAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveAppointment: successfully created appointment id=%s for client=%d",
		result.ID, req.ClientID)

	return &Response{
		OrderID:      result.ID,
		ClientID:     result.ClientID,
		ScheduleDate: result.ScheduleDate,
		StartTime:    result.StartTime,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

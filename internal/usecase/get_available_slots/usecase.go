package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// UseCase use case для просмотра свободных слотов на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeSlotRepo TimeSlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeSlotRepo: timeSlotRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute возвращает рабочие часы, на которых остались свободные места
// В отличие от занятости, запрос свободных мест по дню без расписания
// или по выходному — ошибка клиента, а не пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var schedule *domain.ScheduleDay
	var slots []*domain.TimeSlot

	// Расписание и счётчики читаются одним снимком в read-only транзакции
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		schedule, err = uc.scheduleRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			return err
		}
		// В выходной счётчики не читаются
		if schedule.IsHoliday {
			return nil
		}
		slots, err = uc.timeSlotRepo.GetByDate(txCtx, req.Date)
		return err
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: no schedule for date %s", req.Date.Format(domain.DateFormat))
			return nil, ErrNoSchedule
		}
		uc.logger.Error("GetAvailableSlots: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: failed to read slots: %v", ErrInternal, err)
	}

	if schedule.IsHoliday {
		uc.logger.Warn("GetAvailableSlots: date %s is a holiday", req.Date.Format(domain.DateFormat))
		return nil, ErrHoliday
	}

	booked := make(map[types.TimeString]int, len(slots))
	for _, slot := range slots {
		booked[slot.Hour] = slot.BookedCount
	}

	workingHours := schedule.WorkingHours()
	result := make([]AvailableSlot, 0, len(workingHours))
	for _, hour := range workingHours {
		available := schedule.MaxCapacity - booked[hour]
		if available <= 0 {
			continue
		}
		result = append(result, AvailableSlot{
			Time:           hour,
			AvailableSpots: available,
		})
	}

	return &Response{Date: req.Date, Slots: result}, nil
}

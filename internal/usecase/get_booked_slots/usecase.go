package get_booked_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	scheduleRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/schedule"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// UseCase use case для просмотра занятости слотов на дату
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

// Execute возвращает занятость каждого рабочего часа на дату
// День без расписания — это день без слотов: возвращается пустой список, не ошибка
// Выходной день список не обнуляет: занятость показывается по рабочим часам дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedSlots: date=%s", req.Date.Format(domain.DateFormat))

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
		slots, err = uc.timeSlotRepo.GetByDate(txCtx, req.Date)
		return err
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetBookedSlots: no schedule for date %s", req.Date.Format(domain.DateFormat))
			return &Response{Date: req.Date, Slots: []BookedSlot{}}, nil
		}
		uc.logger.Error("GetBookedSlots: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: failed to read slots: %v", ErrInternal, err)
	}

	// Часы без строки счётчика имеют занятость 0
	booked := make(map[types.TimeString]int, len(slots))
	for _, slot := range slots {
		booked[slot.Hour] = slot.BookedCount
	}

	workingHours := schedule.WorkingHours()
	result := make([]BookedSlot, 0, len(workingHours))
	for _, hour := range workingHours {
		result = append(result, BookedSlot{
			Time:        hour,
			BookedCount: booked[hour],
		})
	}

	return &Response{Date: req.Date, Slots: result}, nil
}

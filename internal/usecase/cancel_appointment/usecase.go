package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	appointmentRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/appointment"
)

// UseCase use case для отмены записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeSlotRepo    TimeSlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeSlotRepo:    timeSlotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены записи
// Смена статуса и уменьшение счётчика занятости выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: client=%d, order=%s", req.ClientID, req.OrderID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Ищем запись по идентификатору и клиенту (FOR UPDATE внутри транзакции)
		appt, err := uc.appointmentRepo.GetByIDAndClient(txCtx, req.OrderID, req.ClientID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelAppointment: appointment %s not found for client=%d", req.OrderID, req.ClientID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to get appointment %s: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2. Повторная отмена запрещена
		if !appt.CanBeCancelled() {
			uc.logger.Warn("CancelAppointment: appointment %s is already cancelled", req.OrderID)
			return ErrAlreadyCancelled
		}

		// 3. Переводим запись в статус cancelled
		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelAppointment: failed to update status for %s: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 4. Освобождаем место в слоте
		// Счётчик не уходит в минус: при нуле UPDATE просто не затронет строк
		if _, err := uc.timeSlotRepo.Decrement(txCtx, appt.ScheduleDate, appt.StartTime); err != nil {
			uc.logger.Error("CancelAppointment: failed to decrement slot for %s: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to decrement slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelAppointment: successfully cancelled appointment %s for client=%d",
		req.OrderID, req.ClientID)

	return &Response{Success: true}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.OrderID == uuid.Nil {
		return fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}

	return nil
}

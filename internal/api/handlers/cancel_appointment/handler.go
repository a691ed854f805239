package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	cancelAppointment "github.com/m0rzhov/PTS-TimetableService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidOrderID      = "некорректный идентификатор записи"
	msgAppointmentNotFound = "запись не найдена"
	msgAlreadyCancelled    = "запись уже отменена"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timetable/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timetable/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /timetable/cancel - Invalid order id %q: %v", req.OrderID, err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /timetable/cancel - Appointment not found: client_id=%d, order_id=%s", req.ClientID, req.OrderID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, cancelAppointment.ErrAlreadyCancelled):
			h.logger.Warn("POST /timetable/cancel - Already cancelled: client_id=%d, order_id=%s", req.ClientID, req.OrderID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			h.logger.Warn("POST /timetable/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /timetable/cancel - Failed to cancel: client_id=%d, order_id=%s, error=%v",
				req.ClientID, req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timetable/cancel - Appointment cancelled: client_id=%d, order_id=%s",
		req.ClientID, req.OrderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

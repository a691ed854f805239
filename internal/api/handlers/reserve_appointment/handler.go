package reserve_appointment

import (
	"errors"
	"net/http"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	reserveAppointment "github.com/m0rzhov/PTS-TimetableService/internal/usecase/reserve_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidTime         = "время записи должно начинаться в начале часа"
	msgDateInPast          = "дата записи в прошлом"
	msgClientNotFound      = "клиент не найден"
	msgNoSchedule          = "на выбранную дату не задано расписание"
	msgHoliday             = "выбранная дата является выходным днём"
	msgOutsideWorkingHours = "время записи вне рабочих часов"
	msgDuplicateBooking    = "у клиента уже есть активная запись на эту дату"
	msgSlotFull            = "на выбранное время не осталось свободных мест"
)

type Handler struct {
	useCase ReserveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ReserveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timetable/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timetable/reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /timetable/reserve - Failed to parse datetime %q: %v", req.DateTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveAppointment.ErrClientNotFound):
			h.logger.Warn("POST /timetable/reserve - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, reserveAppointment.ErrInvalidTime):
			h.logger.Warn("POST /timetable/reserve - Time not hour-aligned: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, reserveAppointment.ErrDateInPast):
			h.logger.Warn("POST /timetable/reserve - Date in past: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, reserveAppointment.ErrNoSchedule):
			h.logger.Warn("POST /timetable/reserve - No schedule: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondBadRequest(w, msgNoSchedule)

		case errors.Is(err, reserveAppointment.ErrHoliday):
			h.logger.Warn("POST /timetable/reserve - Holiday: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, reserveAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /timetable/reserve - Outside working hours: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, reserveAppointment.ErrDuplicateBooking):
			h.logger.Warn("POST /timetable/reserve - Duplicate booking: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, reserveAppointment.ErrSlotFull):
			h.logger.Warn("POST /timetable/reserve - Slot full: client_id=%d, datetime=%s", req.ClientID, req.DateTime)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, reserveAppointment.ErrInvalidInput):
			h.logger.Warn("POST /timetable/reserve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /timetable/reserve - Failed to reserve: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timetable/reserve - Appointment created: order_id=%s, client_id=%d",
		result.OrderID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

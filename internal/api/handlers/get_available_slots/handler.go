package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	getAvailableSlots "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoSchedule  = "на выбранную дату не задано расписание"
	msgHoliday     = "выбранная дата является выходным днём"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timetable/available?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /timetable/available - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /timetable/available - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNoSchedule):
			h.logger.Warn("GET /timetable/available - No schedule: date=%s", dateParam)
			handlers.RespondBadRequest(w, msgNoSchedule)

		case errors.Is(err, getAvailableSlots.ErrHoliday):
			h.logger.Warn("GET /timetable/available - Holiday: date=%s", dateParam)
			handlers.RespondBadRequest(w, msgHoliday)

		default:
			h.logger.Error("GET /timetable/available - Failed to get slots: date=%s, error=%v", dateParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timetable/available - Returned %d slots for date=%s", len(result.Slots), dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

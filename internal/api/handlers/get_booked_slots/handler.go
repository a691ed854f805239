package get_booked_slots

import (
	"net/http"
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	getBookedSlots "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_booked_slots"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timetable/all?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /timetable/all - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /timetable/all - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /timetable/all - Failed to get slots: date=%s, error=%v", dateParam, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /timetable/all - Returned %d slots for date=%s", len(result.Slots), dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

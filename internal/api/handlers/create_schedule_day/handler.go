package create_schedule_day

import (
	"errors"
	"net/http"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleExists     = "расписание на эту дату уже задано"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleAlreadyExists):
			h.logger.Warn("POST /schedule - Schedule already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgScheduleExists)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule - Failed to create schedule: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule - Schedule created: id=%d, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

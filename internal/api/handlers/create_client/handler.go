package create_client

import (
	"errors"
	"net/http"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPhoneAlreadyUsed   = "клиент с таким телефоном уже зарегистрирован"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrPhoneAlreadyUsed):
			h.logger.Warn("POST /clients - Phone already used: phone=%s", req.Phone)
			handlers.RespondConflict(w, msgPhoneAlreadyUsed)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

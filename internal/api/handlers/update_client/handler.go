package update_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m0rzhov/PTS-TimetableService/internal/api/handlers"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClientID    = "некорректный идентификатор клиента"
	msgClientNotFound     = "клиент не найден"
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

// Handle PUT /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /clients/{clientId} - Invalid client id %q: %v", vars["clientId"], err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{clientId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{clientId} - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clients.ErrPhoneAlreadyUsed):
			h.logger.Warn("PUT /clients/{clientId} - Phone already used: client_id=%d", clientID)
			handlers.RespondConflict(w, msgPhoneAlreadyUsed)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{clientId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /clients/{clientId} - Failed to update client: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{clientId} - Client updated: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

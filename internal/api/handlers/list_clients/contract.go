package list_clients

import (
	"context"

	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients/models"
)

type ClientService interface {
	GetAll(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

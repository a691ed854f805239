package get_client

import (
	"context"

	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients/models"
)

type ClientService interface {
	GetByID(ctx context.Context, id int64) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

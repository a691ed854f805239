package clients

import (
	"context"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id int64, client *domain.Client) (*domain.Client, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	clientRepo "github.com/m0rzhov/PTS-TimetableService/internal/infra/storage/client"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create регистрирует нового клиента
// Телефон должен быть уникален среди всех клиентов
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client name=%q, phone=%s", req.Name, req.Phone)

	if err := s.validateClientData(req.Name, req.Phone, req.Email); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	exists, err := s.clientRepo.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		s.logger.Error("Create: failed to check phone %s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: phone %s is already used", req.Phone)
		return nil, ErrPhoneAlreadyUsed
	}

	// Гонку между проверкой и вставкой закрывает unique constraint на телефон
	created, err := s.clientRepo.Create(ctx, req.ToDomainClient())
	if err != nil {
		if errors.Is(err, clientRepo.ErrPhoneExists) {
			s.logger.Warn("Create: phone %s is already used", req.Phone)
			return nil, ErrPhoneAlreadyUsed
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%d", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// GetAll получает список всех клиентов
func (s *Service) GetAll(ctx context.Context) (*models.ClientListResponse, error) {
	s.logger.Info("GetAll: fetching all clients")

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update обновляет данные клиента
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// 1. Получаем существующего клиента
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления и валидируем результат
	req.ApplyToClient(client)
	if err := s.validateClientData(client.Name, client.Phone, client.Email); err != nil {
		s.logger.Warn("Update: validation failed for client id=%d: %v", id, err)
		return nil, err
	}

	// 3. Сохраняем обновленного клиента
	updated, err := s.clientRepo.Update(ctx, id, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found during update", id)
			return nil, ErrClientNotFound
		}
		if errors.Is(err, clientRepo.ErrPhoneExists) {
			s.logger.Warn("Update: phone %s is already used", client.Phone)
			return nil, ErrPhoneAlreadyUsed
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%d", id)
	return models.FromDomainClient(updated), nil
}

// validateClientData валидирует данные клиента
func (s *Service) validateClientData(name, phone string, email *string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if email != nil && len(*email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email must be at most %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}

	return nil
}

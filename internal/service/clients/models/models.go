package models

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
)

// Request модели

// CreateClientRequest запрос на регистрацию клиента
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// UpdateClientRequest запрос на обновление клиента
// Все поля опциональны - обновляются только переданные значения
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	if clients == nil {
		return &ClientListResponse{
			Clients: []ClientResponse{},
		}
	}

	resp := &ClientListResponse{
		Clients: make([]ClientResponse, len(clients)),
	}

	for i, client := range clients {
		if clientResp := FromDomainClient(client); clientResp != nil {
			resp.Clients[i] = *clientResp
		}
	}

	return resp
}

// ToDomainClient конвертирует CreateClientRequest в domain модель
func (r *CreateClientRequest) ToDomainClient() *domain.Client {
	return &domain.Client{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// ApplyToClient применяет обновления к существующему клиенту
// Обновляются только непустые (not nil) поля из request
func (r *UpdateClientRequest) ApplyToClient(client *domain.Client) {
	if r.Name != nil {
		client.Name = *r.Name
	}
	if r.Phone != nil {
		client.Phone = *r.Phone
	}
	if r.Email != nil {
		client.Email = r.Email
	}
}

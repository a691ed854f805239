package cancel_appointment

import (
	"github.com/google/uuid"

	cancelAppointment "github.com/m0rzhov/PTS-TimetableService/internal/usecase/cancel_appointment"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	ClientID int64  `json:"clientId"`
	OrderID  string `json:"orderId"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Success bool `json:"success"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelRequest) ToUseCaseRequest() (*cancelAppointment.Request, error) {
	orderID, err := uuid.Parse(r.OrderID)
	if err != nil {
		return nil, err
	}

	return &cancelAppointment.Request{
		ClientID: r.ClientID,
		OrderID:  orderID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelResponse {
	return &CancelResponse{Success: resp.Success}
}

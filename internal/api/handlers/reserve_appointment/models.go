package reserve_appointment

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	reserveAppointment "github.com/m0rzhov/PTS-TimetableService/internal/usecase/reserve_appointment"
)

// ReserveRequest HTTP request model
type ReserveRequest struct {
	ClientID int64  `json:"clientId"`
	DateTime string `json:"datetime"` // "2025-10-15 14:00"
}

// ReserveResponse HTTP response model
type ReserveResponse struct {
	OrderID   string `json:"orderId"`
	ClientID  int64  `json:"clientId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRequest) ToUseCaseRequest() (*reserveAppointment.Request, error) {
	dateTime, err := time.Parse(domain.DateTimeFormat, r.DateTime)
	if err != nil {
		return nil, err
	}

	return &reserveAppointment.Request{
		ClientID: r.ClientID,
		DateTime: dateTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveAppointment.Response) *ReserveResponse {
	return &ReserveResponse{
		OrderID:   resp.OrderID.String(),
		ClientID:  resp.ClientID,
		Date:      resp.ScheduleDate.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

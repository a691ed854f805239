package create_schedule_day

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// CreateScheduleDayRequest HTTP request model
type CreateScheduleDayRequest struct {
	Date        string  `json:"date"` // "2025-10-15"
	IsHoliday   bool    `json:"isHoliday"`
	OpeningTime *string `json:"openingTime,omitempty"` // "08:00"
	ClosingTime *string `json:"closingTime,omitempty"` // "22:00"
	MaxCapacity *int    `json:"maxCapacity,omitempty"`
}

// ScheduleDayResponse HTTP response model
type ScheduleDayResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	IsHoliday   bool   `json:"isHoliday"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	MaxCapacity int    `json:"maxCapacity"`
	CreatedAt   string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateScheduleDayRequest) ToServiceRequest() (*models.CreateScheduleDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &models.CreateScheduleDayRequest{
		Date:        date,
		IsHoliday:   r.IsHoliday,
		MaxCapacity: r.MaxCapacity,
	}

	if r.OpeningTime != nil {
		opening, err := types.NewTimeStringFromString(*r.OpeningTime)
		if err != nil {
			return nil, err
		}
		req.OpeningTime = &opening
	}

	if r.ClosingTime != nil {
		closing, err := types.NewTimeStringFromString(*r.ClosingTime)
		if err != nil {
			return nil, err
		}
		req.ClosingTime = &closing
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleDayResponse) *ScheduleDayResponse {
	return &ScheduleDayResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		IsHoliday:   resp.IsHoliday,
		OpeningTime: resp.OpeningTime.String(),
		ClosingTime: resp.ClosingTime.String(),
		MaxCapacity: resp.MaxCapacity,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

package get_schedule_day

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/internal/service/schedule/models"
)

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

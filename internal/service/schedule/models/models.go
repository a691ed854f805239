package models

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// Request модели

// CreateScheduleDayRequest запрос на создание расписания на дату
// Не заданные времена и вместимость заполняются значениями по умолчанию
type CreateScheduleDayRequest struct {
	Date        time.Time         `json:"date"`
	IsHoliday   bool              `json:"isHoliday"`
	OpeningTime *types.TimeString `json:"openingTime,omitempty"`
	ClosingTime *types.TimeString `json:"closingTime,omitempty"`
	MaxCapacity *int              `json:"maxCapacity,omitempty"`
}

// Response модели

// ScheduleDayResponse ответ с расписанием на дату
type ScheduleDayResponse struct {
	ID          int64            `json:"id"`
	Date        time.Time        `json:"date"`
	IsHoliday   bool             `json:"isHoliday"`
	OpeningTime types.TimeString `json:"openingTime"`
	ClosingTime types.TimeString `json:"closingTime"`
	MaxCapacity int              `json:"maxCapacity"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Методы конвертации

// FromDomainScheduleDay конвертирует domain модель в DTO
func FromDomainScheduleDay(d *domain.ScheduleDay) *ScheduleDayResponse {
	if d == nil {
		return nil
	}

	return &ScheduleDayResponse{
		ID:          d.ID,
		Date:        d.Date,
		IsHoliday:   d.IsHoliday,
		OpeningTime: d.OpeningTime,
		ClosingTime: d.ClosingTime,
		MaxCapacity: d.MaxCapacity,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainScheduleDay конвертирует CreateScheduleDayRequest в domain модель,
// подставляя значения по умолчанию для незаданных полей
func (r *CreateScheduleDayRequest) ToDomainScheduleDay() *domain.ScheduleDay {
	day := &domain.ScheduleDay{
		Date:        r.Date,
		IsHoliday:   r.IsHoliday,
		OpeningTime: domain.DefaultOpeningTime,
		ClosingTime: domain.DefaultClosingTime,
		MaxCapacity: domain.DefaultMaxCapacity,
	}

	if r.OpeningTime != nil {
		day.OpeningTime = *r.OpeningTime
	}
	if r.ClosingTime != nil {
		day.ClosingTime = *r.ClosingTime
	}
	if r.MaxCapacity != nil {
		day.MaxCapacity = *r.MaxCapacity
	}

	return day
}

package get_available_slots

import (
	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	getAvailableSlots "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_available_slots"
)

// AvailableSlotResponse свободный слот
type AvailableSlotResponse struct {
	Time           string `json:"time"`
	AvailableSpots int    `json:"availableSpots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string                  `json:"date"`
	Slots []AvailableSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlotResponse{
			Time:           slot.Time.String(),
			AvailableSpots: slot.AvailableSpots,
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

package get_booked_slots

import (
	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	getBookedSlots "github.com/m0rzhov/PTS-TimetableService/internal/usecase/get_booked_slots"
)

// BookedSlotResponse занятость одного слота
type BookedSlotResponse struct {
	Time        string `json:"time"`
	BookedCount int    `json:"bookedCount"`
}

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	Date  string               `json:"date"`
	Slots []BookedSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	slots := make([]BookedSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = BookedSlotResponse{
			Time:        slot.Time.String(),
			BookedCount: slot.BookedCount,
		}
	}

	return &BookedSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

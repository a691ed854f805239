package get_booked_slots

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// Request модель запроса занятости слотов на дату
type Request struct {
	Date time.Time // Дата, на которую запрашивается занятость
}

// BookedSlot занятость одного часового слота
type BookedSlot struct {
	Time        types.TimeString // Время начала слота
	BookedCount int              // Число активных записей на слот
}

// Response модель ответа с занятостью всех рабочих слотов
type Response struct {
	Date  time.Time    // Дата
	Slots []BookedSlot // Слоты в порядке возрастания времени
}

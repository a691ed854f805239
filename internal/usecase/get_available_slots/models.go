package get_available_slots

import (
	"time"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// Request модель запроса свободных слотов на дату
type Request struct {
	Date time.Time // Дата, на которую запрашиваются свободные слоты
}

// AvailableSlot свободный часовой слот
type AvailableSlot struct {
	Time           types.TimeString // Время начала слота
	AvailableSpots int              // Число свободных мест
}

// Response модель ответа со свободными слотами
type Response struct {
	Date  time.Time       // Дата
	Slots []AvailableSlot // Слоты со свободными местами в порядке возрастания времени
}

package reserve_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// Request модель запроса на бронирование часового слота
type Request struct {
	ClientID int64     // ID клиента
	DateTime time.Time // Дата и время начала слота (минуты должны быть 00)
}

// Response модель ответа с созданной записью
type Response struct {
	OrderID      uuid.UUID        // Идентификатор записи
	ClientID     int64            // ID клиента
	ScheduleDate time.Time        // Дата записи
	StartTime    types.TimeString // Время начала
	Status       string           // Статус записи
	CreatedAt    time.Time        // Время создания
}

package cancel_appointment

import "github.com/google/uuid"

// Request модель запроса на отмену записи
type Request struct {
	ClientID int64     // ID клиента, которому принадлежит запись
	OrderID  uuid.UUID // Идентификатор записи
}

// Response модель ответа на отмену записи
type Response struct {
	Success bool // Признак успешной отмены
}

package reserve_appointment

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.DateTime.IsZero() {
		return fmt.Errorf("%w: datetime is required", ErrInvalidInput)
	}

	return nil
}

// validateHourAligned проверяет, что время выровнено по началу часа
// Записи длятся ровно час и начинаются только в HH:00
func validateHourAligned(dt time.Time) error {
	if dt.Minute() != 0 || dt.Second() != 0 || dt.Nanosecond() != 0 {
		return ErrInvalidTime
	}
	return nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isInPast проверяет, что момент записи уже прошёл
// Сравнение идёт с точностью до часа: текущий час ещё доступен для записи
func isInPast(dateTime, now time.Time) bool {
	currentHour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return dateTime.Before(currentHour)
}

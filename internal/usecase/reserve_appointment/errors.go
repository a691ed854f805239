package reserve_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("reserve_appointment: client not found")

	// ErrInvalidTime возвращается, когда время записи не выровнено по началу часа
	ErrInvalidTime = errors.New("reserve_appointment: time must be aligned to the start of an hour")

	// ErrDateInPast возвращается, когда дата записи в прошлом
	ErrDateInPast = errors.New("reserve_appointment: date is in the past")

	// ErrNoSchedule возвращается, когда на дату не задано расписание
	ErrNoSchedule = errors.New("reserve_appointment: no schedule for this date")

	// ErrHoliday возвращается, когда дата отмечена как выходной
	ErrHoliday = errors.New("reserve_appointment: this date is a holiday")

	// ErrOutsideWorkingHours возвращается, когда час вне рабочего времени
	ErrOutsideWorkingHours = errors.New("reserve_appointment: time is outside working hours")

	// ErrDuplicateBooking возвращается, когда у клиента уже есть активная запись на эту дату
	ErrDuplicateBooking = errors.New("reserve_appointment: client already has an active appointment on this date")

	// ErrSlotFull возвращается, когда на час не осталось свободных мест
	ErrSlotFull = errors.New("reserve_appointment: no free spots for this time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_appointment: internal error")
)

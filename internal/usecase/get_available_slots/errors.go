package get_available_slots

import "errors"

var (
	// ErrNoSchedule возвращается, когда на дату не задано расписание
	ErrNoSchedule = errors.New("get_available_slots: no schedule for this date")

	// ErrHoliday возвращается, когда дата отмечена как выходной
	ErrHoliday = errors.New("get_available_slots: this date is a holiday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

package domain

// Default schedule values applied when a schedule day is created without
// explicit settings
const (
	DefaultOpeningTime   = "08:00"
	DefaultClosingTime   = "22:00"
	DefaultMaxCapacity   = 10
	DefaultDurationHours = 1
)

// Business validation constants
const (
	MinCapacity      = 0
	MaxCapacityLimit = 100
	MaxNameLength    = 200
	MaxPhoneLength   = 20
	MaxEmailLength   = 200
)

// MinutesPerSlot длительность одного слота бронирования
// Слоты всегда часовые и начинаются в начале часа
const MinutesPerSlot = 60

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

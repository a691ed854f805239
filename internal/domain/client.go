package domain

import "time"

// Client represents a registered client of the pool.
// Phone numbers are globally unique; clients are never hard-deleted
type Client struct {
	ID    int64
	Name  string
	Phone string
	Email *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

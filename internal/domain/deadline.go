package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deadline is the business entity. It does not depend on Gin, Postgres or Redis.
// DueDate carries the calendar day only (midnight UTC); the optional DueTime
// ("HH:MM") is display metadata and never feeds status computation.
type Deadline struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	DueTime     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

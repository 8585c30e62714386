package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account allowed to manage the roster.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package skill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("skill not found")
	ErrNameTaken = errors.New("skill name already exists")
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

package project

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("project not found")
	ErrRequirementNotFound = errors.New("project requirement not found")
)

type Status string

const (
	StatusPlanning  Status = "Planning"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

func Statuses() []Status {
	return []Status{StatusPlanning, StatusActive, StatusCompleted}
}

// ParseStatus is case-insensitive; empty input defaults to Planning.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPlanning, true
	}
	for _, st := range Statuses() {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Requirement struct {
	ProjectID uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	MinLevel  string
}

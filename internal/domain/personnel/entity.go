package personnel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("personnel not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrAssignmentNotFound = errors.New("skill assignment not found")
)

// ExperienceLevel is a categorical seniority tag. It is unrelated to skill
// proficiency and plays no part in matching.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid-Level"
	ExperienceSenior ExperienceLevel = "Senior"
)

func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{ExperienceJunior, ExperienceMid, ExperienceSenior}
}

// ParseExperienceLevel is case-insensitive; empty input defaults to Junior.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExperienceJunior, true
	}
	for _, l := range ExperienceLevels() {
		if strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	return "", false
}

type Personnel struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Role            string
	ExperienceLevel ExperienceLevel
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Assignment is a person's proficiency in one skill. Level holds the stored
// label; it is validated on write and re-parsed by the matching engine.
type Assignment struct {
	PersonID  uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Level     string
	UpdatedAt time.Time
}

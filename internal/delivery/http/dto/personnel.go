package dto

import (
	"time"

	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type PersonnelRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"max=100"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,experience_level"`
}

func (r PersonnelRequest) Input() usecase.PersonnelInput {
	return usecase.PersonnelInput{
		Name:            r.Name,
		Email:           r.Email,
		Role:            r.Role,
		ExperienceLevel: r.ExperienceLevel,
	}
}

type PersonnelResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	ExperienceLevel string    `json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewPersonnelResponse(p personnel.Personnel) PersonnelResponse {
	return PersonnelResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Role:            p.Role,
		ExperienceLevel: string(p.ExperienceLevel),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewPersonnelList(items []personnel.Personnel) []PersonnelResponse {
	out := make([]PersonnelResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPersonnelResponse(p))
	}
	return out
}

type AssignSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id" validate:"required"`
	Level   string    `json:"proficiency_level" validate:"required,proficiency"`
}

func (r AssignSkillRequest) Input() usecase.AssignSkillInput {
	return usecase.AssignSkillInput{SkillID: r.SkillID, Level: r.Level}
}

type AssignmentResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Level     string    `json:"proficiency_level"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAssignmentResponse(a personnel.Assignment) AssignmentResponse {
	return AssignmentResponse{SkillID: a.SkillID, SkillName: a.SkillName, Level: a.Level, UpdatedAt: a.UpdatedAt}
}

func NewAssignmentList(items []personnel.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAssignmentResponse(a))
	}
	return out
}

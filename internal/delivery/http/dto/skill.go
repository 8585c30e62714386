package dto

import (
	"time"

	"skill-matrix/internal/domain/skill"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=100"`
	Description string `json:"description" validate:"max=2000"`
}

func (r SkillRequest) Input() usecase.SkillInput {
	return usecase.SkillInput{Name: r.Name, Category: r.Category, Description: r.Description}
}

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func NewSkillList(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

package dto

import (
	"time"

	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type ProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	StartDate   *Date  `json:"start_date"`
	EndDate     *Date  `json:"end_date"`
	Status      string `json:"status" validate:"omitempty,project_status"`
}

func (r ProjectRequest) Input() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate.Ptr(),
		EndDate:     r.EndDate.Ptr(),
		Status:      r.Status,
	}
}

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   *Date     `json:"start_date"`
	EndDate     *Date     `json:"end_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   NewDate(p.StartDate),
		EndDate:     NewDate(p.EndDate),
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProjectList(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

type RequirementRequest struct {
	SkillID  uuid.UUID `json:"skill_id" validate:"required"`
	MinLevel string    `json:"min_proficiency_level" validate:"required,proficiency"`
}

func (r RequirementRequest) Input() usecase.RequirementInput {
	return usecase.RequirementInput{SkillID: r.SkillID, MinLevel: r.MinLevel}
}

type RequirementResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	MinLevel  string    `json:"min_proficiency_level"`
}

func NewRequirementResponse(r project.Requirement) RequirementResponse {
	return RequirementResponse{SkillID: r.SkillID, SkillName: r.SkillName, MinLevel: r.MinLevel}
}

func NewRequirementList(items []project.Requirement) []RequirementResponse {
	out := make([]RequirementResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewRequirementResponse(r))
	}
	return out
}

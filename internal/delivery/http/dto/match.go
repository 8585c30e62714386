package dto

import (
	"sort"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type MatchResponse struct {
	Project        ProjectResponse       `json:"project"`
	RequiredSkills []RequirementResponse `json:"required_skills"`
	Outcome        string                `json:"outcome"`
	Matches        []CandidateResponse   `json:"matches"`
	Gaps           []GapResponse         `json:"gaps"`
	Issues         []LabelIssueResponse  `json:"issues"`
}

type CandidateResponse struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Role   string           `json:"role"`
	Email  string           `json:"email"`
	Skills []CandidateSkill `json:"skills"`
}

type CandidateSkill struct {
	SkillID uuid.UUID `json:"skill_id"`
	Level   string    `json:"proficiency_level"`
}

type GapResponse struct {
	SkillID        uuid.UUID `json:"skill_id"`
	SkillName      string    `json:"skill_name"`
	MinLevel       string    `json:"min_proficiency_level"`
	QualifiedCount int       `json:"qualified_count"`
	Narrative      string    `json:"narrative"`
}

type LabelIssueResponse struct {
	Source   string     `json:"source"`
	Kind     string     `json:"kind"`
	PersonID *uuid.UUID `json:"person_id,omitempty"`
	SkillID  uuid.UUID  `json:"skill_id"`
	Label    string     `json:"label"`
}

func NewMatchResponse(m usecase.ProjectMatch) MatchResponse {
	res := m.Result
	out := MatchResponse{
		Project:        NewProjectResponse(m.Project),
		RequiredSkills: make([]RequirementResponse, 0, len(res.Requirements)),
		Outcome:        string(res.Outcome),
		Matches:        make([]CandidateResponse, 0, len(res.Matched)),
		Gaps:           make([]GapResponse, 0, len(res.Gaps)),
		Issues:         make([]LabelIssueResponse, 0, len(res.Issues)),
	}

	for _, r := range res.Requirements {
		label := r.MinLabel
		if r.MinLevel.Valid() {
			label = r.MinLevel.String()
		}
		out.RequiredSkills = append(out.RequiredSkills, RequirementResponse{
			SkillID:   r.SkillID,
			SkillName: r.SkillName,
			MinLevel:  label,
		})
	}

	for _, c := range res.Matched {
		out.Matches = append(out.Matches, newCandidateResponse(c))
	}

	for _, g := range res.Gaps {
		out.Gaps = append(out.Gaps, GapResponse{
			SkillID:        g.SkillID,
			SkillName:      g.SkillName,
			MinLevel:       g.MinLabel,
			QualifiedCount: g.QualifiedCount,
			Narrative:      g.Narrative,
		})
	}

	for _, is := range res.Issues {
		item := LabelIssueResponse{Source: string(is.Source), Kind: string(is.Kind), SkillID: is.SkillID, Label: is.Label}
		if is.PersonID != uuid.Nil {
			id := is.PersonID
			item.PersonID = &id
		}
		out.Issues = append(out.Issues, item)
	}

	return out
}

func newCandidateResponse(c matching.Candidate) CandidateResponse {
	skills := make([]CandidateSkill, 0, len(c.Skills))
	for id := range c.Skills {
		skills = append(skills, CandidateSkill{SkillID: id, Level: c.Label(id)})
	}
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].SkillID.String() < skills[j].SkillID.String()
	})

	return CandidateResponse{
		ID:     c.ID,
		Name:   c.Name,
		Role:   c.Role,
		Email:  c.Email,
		Skills: skills,
	}
}

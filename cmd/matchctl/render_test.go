package main

import (
	"strings"
	"testing"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(reqs []matching.RequirementRow, roster []matching.RosterRow) dto.MatchResponse {
	return dto.NewMatchResponse(usecase.ProjectMatch{
		Project: project.Project{ID: uuid.New(), Name: "Payments API", Status: project.StatusActive},
		Result:  matching.Match(reqs, roster),
	})
}

func TestRenderText_NoRequirements(t *testing.T) {
	var out strings.Builder
	require.NoError(t, renderText(&out, report(nil, nil)))

	assert.Contains(t, out.String(), "Project: Payments API (Active)")
	assert.Contains(t, out.String(), usecase.NoRequirementsMessage)
}

func TestRenderText_Matches(t *testing.T) {
	goID := uuid.New()
	var out strings.Builder
	require.NoError(t, renderText(&out, report(
		[]matching.RequirementRow{{SkillID: goID, SkillName: "Go", MinLevel: "Intermediate"}},
		[]matching.RosterRow{{PersonID: uuid.New(), Name: "Ana Ruiz", Role: "Backend", Email: "ana@example.com", SkillID: goID, Level: "Expert"}},
	)))

	s := out.String()
	assert.Contains(t, s, "  - Go (min Intermediate)")
	assert.Contains(t, s, "1 qualified:")
	assert.Contains(t, s, "Ana Ruiz")
	assert.NotContains(t, s, "Gap report")
}

func TestRenderText_GapsAndIssues(t *testing.T) {
	goID := uuid.New()
	var out strings.Builder
	require.NoError(t, renderText(&out, report(
		[]matching.RequirementRow{{SkillID: goID, SkillName: "Go", MinLevel: "Expert"}},
		[]matching.RosterRow{{PersonID: uuid.New(), Name: "Ana", SkillID: goID, Level: "Ninja"}},
	)))

	s := out.String()
	assert.Contains(t, s, "No one qualifies. Gap report:")
	assert.Contains(t, s, "Critical shortage")
	assert.Contains(t, s, "1 stored row(s) have an unrecognized label")
}

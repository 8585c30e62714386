package repository

import (
	"context"
	"strings"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/domain/skill"

	"github.com/google/uuid"
)

// RequirementRepository is the skill requirement store: at most one minimum
// level per (project, skill).
type RequirementRepository interface {
	Upsert(ctx context.Context, req project.Requirement) (project.Requirement, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]project.Requirement, error)
	Delete(ctx context.Context, projectID, skillID uuid.UUID) error
	RequirementRows(ctx context.Context, projectID uuid.UUID) ([]matching.RequirementRow, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

func (r *PostgresRequirementRepository) Upsert(ctx context.Context, req project.Requirement) (project.Requirement, error) {
	var out project.Requirement
	err := r.db.QueryRow(ctx,
		`WITH up AS (
			INSERT INTO project_skills (project_id, skill_id, min_proficiency_level)
			VALUES ($1, $2, $3)
			ON CONFLICT (project_id, skill_id)
			DO UPDATE SET min_proficiency_level = EXCLUDED.min_proficiency_level, updated_at = now()
			RETURNING project_id, skill_id, min_proficiency_level
		)
		SELECT up.project_id, up.skill_id, s.name, up.min_proficiency_level
		FROM up JOIN skills s ON s.id = up.skill_id`,
		req.ProjectID, req.SkillID, req.MinLevel,
	).Scan(&out.ProjectID, &out.SkillID, &out.SkillName, &out.MinLevel)
	if err != nil {
		c := foreignKeyConstraint(err)
		switch {
		case c == "":
			return project.Requirement{}, err
		case strings.Contains(c, "skill_id"):
			return project.Requirement{}, skill.ErrNotFound
		default:
			return project.Requirement{}, project.ErrNotFound
		}
	}
	return out, nil
}

func (r *PostgresRequirementRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]project.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.project_id, ps.skill_id, s.name, ps.min_proficiency_level
		 FROM project_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.project_id = $1
		 ORDER BY s.name ASC, ps.skill_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Requirement, 0)
	for rows.Next() {
		var req project.Requirement
		if err := rows.Scan(&req.ProjectID, &req.SkillID, &req.SkillName, &req.MinLevel); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RequirementRows is FindByProjectID shaped for the matcher.
func (r *PostgresRequirementRepository) RequirementRows(ctx context.Context, projectID uuid.UUID) ([]matching.RequirementRow, error) {
	reqs, err := r.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]matching.RequirementRow, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, matching.RequirementRow{SkillID: req.SkillID, SkillName: req.SkillName, MinLevel: req.MinLevel})
	}
	return out, nil
}

func (r *PostgresRequirementRepository) Delete(ctx context.Context, projectID, skillID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1 AND skill_id = $2`, projectID, skillID)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrRequirementNotFound
	}
	return nil
}

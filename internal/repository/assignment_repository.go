package repository

import (
	"context"
	"strings"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/domain/skill"

	"github.com/google/uuid"
)

// AssignmentRepository is the personnel directory: (person, skill, level)
// facts keyed by the pair, plus the roster snapshot read by the matcher.
type AssignmentRepository interface {
	Upsert(ctx context.Context, a personnel.Assignment) (personnel.Assignment, error)
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]personnel.Assignment, error)
	Delete(ctx context.Context, personID, skillID uuid.UUID) error
	RosterRows(ctx context.Context) ([]matching.RosterRow, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

// Upsert keeps at most one level per (person, skill): a second assignment of
// the same skill replaces the stored level.
func (r *PostgresAssignmentRepository) Upsert(ctx context.Context, a personnel.Assignment) (personnel.Assignment, error) {
	var out personnel.Assignment
	err := r.db.QueryRow(ctx,
		`WITH up AS (
			INSERT INTO personnel_skills (person_id, skill_id, proficiency_level)
			VALUES ($1, $2, $3)
			ON CONFLICT (person_id, skill_id)
			DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, updated_at = now()
			RETURNING person_id, skill_id, proficiency_level, updated_at
		)
		SELECT up.person_id, up.skill_id, s.name, up.proficiency_level, up.updated_at
		FROM up JOIN skills s ON s.id = up.skill_id`,
		a.PersonID, a.SkillID, a.Level,
	).Scan(&out.PersonID, &out.SkillID, &out.SkillName, &out.Level, &out.UpdatedAt)
	if err != nil {
		return personnel.Assignment{}, mapAssignmentFK(err)
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) ListByPerson(ctx context.Context, personID uuid.UUID) ([]personnel.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.person_id, ps.skill_id, s.name, ps.proficiency_level, ps.updated_at
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.person_id = $1
		 ORDER BY s.name ASC`,
		personID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personnel.Assignment, 0)
	for rows.Next() {
		var a personnel.Assignment
		if err := rows.Scan(&a.PersonID, &a.SkillID, &a.SkillName, &a.Level, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) Delete(ctx context.Context, personID, skillID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM personnel_skills WHERE person_id = $1 AND skill_id = $2`, personID, skillID)
	if err != nil {
		return err
	}
	if n == 0 {
		return personnel.ErrAssignmentNotFound
	}
	return nil
}

// RosterRows reads every (person, skill, level) row in one statement so the
// matcher sees a single snapshot. Personnel without skills are absent.
func (r *PostgresAssignmentRepository) RosterRows(ctx context.Context) ([]matching.RosterRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.role, p.email, ps.skill_id, ps.proficiency_level
		 FROM personnel p
		 JOIN personnel_skills ps ON ps.person_id = p.id
		 ORDER BY p.id, ps.skill_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.RosterRow, 0)
	for rows.Next() {
		var rr matching.RosterRow
		if err := rows.Scan(&rr.PersonID, &rr.Name, &rr.Role, &rr.Email, &rr.SkillID, &rr.Level); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func mapAssignmentFK(err error) error {
	c := foreignKeyConstraint(err)
	switch {
	case c == "":
		return err
	case strings.Contains(c, "skill_id"):
		return skill.ErrNotFound
	default:
		return personnel.ErrNotFound
	}
}

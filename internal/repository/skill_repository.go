package repository

import (
	"context"
	"strings"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	List(ctx context.Context) ([]skill.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, name, category, description, created_at`

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	created, err := scanSkill(r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+skillColumns,
		s.ID, strings.TrimSpace(s.Name), s.Category, s.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, skill.ErrNameTaken
		}
		return skill.Skill{}, err
	}
	return created, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	updated, err := scanSkill(r.db.QueryRow(ctx,
		`UPDATE skills SET name = $2, category = $3, description = $4
		 WHERE id = $1
		 RETURNING `+skillColumns,
		s.ID, strings.TrimSpace(s.Name), s.Category, s.Description,
	))
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, skill.ErrNotFound
		}
		if isUniqueViolation(err) {
			return skill.Skill{}, skill.ErrNameTaken
		}
		return skill.Skill{}, err
	}
	return updated, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt)
	return s, err
}

package repository

import (
	"context"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/personnel"

	"github.com/google/uuid"
)

type PersonnelRepository interface {
	List(ctx context.Context) ([]personnel.Personnel, error)
	GetByID(ctx context.Context, id uuid.UUID) (personnel.Personnel, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error)
	Update(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresPersonnelRepository struct {
	db database.DB
}

func NewPostgresPersonnelRepository(db database.DB) *PostgresPersonnelRepository {
	return &PostgresPersonnelRepository{db: db}
}

const personnelColumns = `id, name, email, role, experience_level, created_at, updated_at`

func (r *PostgresPersonnelRepository) List(ctx context.Context) ([]personnel.Personnel, error) {
	rows, err := r.db.Query(ctx, `SELECT `+personnelColumns+` FROM personnel ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personnel.Personnel, 0)
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonnelRepository) GetByID(ctx context.Context, id uuid.UUID) (personnel.Personnel, error) {
	p, err := scanPersonnel(r.db.QueryRow(ctx, `SELECT `+personnelColumns+` FROM personnel WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return personnel.Personnel{}, personnel.ErrNotFound
		}
		return personnel.Personnel{}, err
	}
	return p, nil
}

func (r *PostgresPersonnelRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM personnel WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPersonnelRepository) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	created, err := scanPersonnel(r.db.QueryRow(ctx,
		`INSERT INTO personnel (id, name, email, role, experience_level)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+personnelColumns,
		p.ID, p.Name, p.Email, p.Role, string(p.ExperienceLevel),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return personnel.Personnel{}, personnel.ErrEmailTaken
		}
		return personnel.Personnel{}, err
	}
	return created, nil
}

func (r *PostgresPersonnelRepository) Update(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	updated, err := scanPersonnel(r.db.QueryRow(ctx,
		`UPDATE personnel
		 SET name = $2, email = $3, role = $4, experience_level = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+personnelColumns,
		p.ID, p.Name, p.Email, p.Role, string(p.ExperienceLevel),
	))
	if err != nil {
		if isNoRows(err) {
			return personnel.Personnel{}, personnel.ErrNotFound
		}
		if isUniqueViolation(err) {
			return personnel.Personnel{}, personnel.ErrEmailTaken
		}
		return personnel.Personnel{}, err
	}
	return updated, nil
}

func (r *PostgresPersonnelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return personnel.ErrNotFound
	}
	return nil
}

func scanPersonnel(row database.Row) (personnel.Personnel, error) {
	var (
		p     personnel.Personnel
		level string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &level, &p.CreatedAt, &p.UpdatedAt)
	p.ExperienceLevel = personnel.ExperienceLevel(level)
	return p, err
}

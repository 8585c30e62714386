package repository

import (
	"context"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, p project.Project) (project.Project, error)
	Update(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, status, created_at, updated_at`

func (r *PostgresProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
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

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return scanProject(r.db.QueryRow(ctx,
		`INSERT INTO projects (id, name, description, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+projectColumns,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, string(p.Status),
	))
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	updated, err := scanProject(r.db.QueryRow(ctx,
		`UPDATE projects
		 SET name = $2, description = $3, start_date = $4, end_date = $5, status = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+projectColumns,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, string(p.Status),
	))
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	return updated, nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

func scanProject(row database.Row) (project.Project, error) {
	var (
		p      project.Project
		status string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &status, &p.CreatedAt, &p.UpdatedAt)
	p.Status = project.Status(status)
	return p, err
}

package repository

import (
	"context"

	"skill-matrix/internal/database"
)

// LabelCount is one bucket of a GROUP BY count.
type LabelCount struct {
	Label string
	Count int64
}

type ReportRepository interface {
	ExperienceDistribution(ctx context.Context) ([]LabelCount, error)
	TopSkills(ctx context.Context, limit int) ([]LabelCount, error)
	ProjectStatusCounts(ctx context.Context) ([]LabelCount, error)
}

type PostgresReportRepository struct {
	db database.DB
}

func NewPostgresReportRepository(db database.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) ExperienceDistribution(ctx context.Context) ([]LabelCount, error) {
	return r.counts(ctx,
		`SELECT experience_level, COUNT(*)
		 FROM personnel
		 GROUP BY experience_level
		 ORDER BY experience_level ASC`,
	)
}

// TopSkills ranks skills by number of holders; ties break on name.
func (r *PostgresReportRepository) TopSkills(ctx context.Context, limit int) ([]LabelCount, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.counts(ctx,
		`SELECT s.name, COUNT(ps.person_id) AS holders
		 FROM skills s
		 JOIN personnel_skills ps ON ps.skill_id = s.id
		 GROUP BY s.name
		 ORDER BY holders DESC, s.name ASC
		 LIMIT $1`,
		limit,
	)
}

func (r *PostgresReportRepository) ProjectStatusCounts(ctx context.Context) ([]LabelCount, error) {
	return r.counts(ctx,
		`SELECT status, COUNT(*)
		 FROM projects
		 GROUP BY status
		 ORDER BY status ASC`,
	)
}

func (r *PostgresReportRepository) counts(ctx context.Context, query string, args ...any) ([]LabelCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LabelCount, 0)
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

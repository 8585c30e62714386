package seeder

import (
	"context"

	"skill-matrix/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

var demoProjects = []struct {
	Name         string
	Description  string
	Status       string
	Requirements map[string]string
}{
	{
		Name: "Payments API", Description: "Card settlement service", Status: "Active",
		Requirements: map[string]string{"Go": "Advanced", "PostgreSQL": "Intermediate"},
	},
	{
		Name: "Customer Portal", Description: "Self-service web app", Status: "Planning",
		Requirements: map[string]string{"React": "Intermediate", "TypeScript": "Advanced"},
	},
	{
		Name: "Cloud Migration", Description: "Move workloads to EKS", Status: "Planning",
		Requirements: map[string]string{"Kubernetes": "Expert", "AWS": "Advanced", "Go": "Advanced"},
	},
	{
		Name: "Internal Wiki", Description: "Knowledge base refresh", Status: "Completed",
	},
}

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "description", "status"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "project_skills", "project_id", "skill_id", "min_proficiency_level"); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Tx) error {
		for _, p := range demoProjects {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO projects (name, description, status)
				 SELECT $1, $2, $3
				 WHERE NOT EXISTS (SELECT 1 FROM projects WHERE name = $1)`,
				p.Name, p.Description, p.Status,
			)
			if err != nil {
				return err
			}

			for skill, level := range p.Requirements {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO project_skills (project_id, skill_id, min_proficiency_level)
					 SELECT p.id, s.id, $3 FROM projects p, skills s
					 WHERE p.name = $1 AND s.name = $2
					 ON CONFLICT (project_id, skill_id) DO NOTHING`,
					p.Name, skill, level,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

package seeder

import (
	"context"

	"skill-matrix/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

var demoSkills = []struct {
	Name        string
	Category    string
	Description string
}{
	{Name: "Go", Category: "Programming Language", Description: "Backend services and CLIs"},
	{Name: "Python", Category: "Programming Language", Description: "Data tooling and scripting"},
	{Name: "TypeScript", Category: "Programming Language", Description: "Typed JavaScript"},
	{Name: "React", Category: "Framework", Description: "Web UI library"},
	{Name: "PostgreSQL", Category: "Database", Description: "Relational database"},
	{Name: "Redis", Category: "Database", Description: "In-memory data store"},
	{Name: "Docker", Category: "DevOps", Description: "Container images and runtime"},
	{Name: "Kubernetes", Category: "DevOps", Description: "Container orchestration"},
	{Name: "AWS", Category: "Cloud", Description: "Amazon Web Services"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "description", "created_at"); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Tx) error {
		for _, it := range demoSkills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (name, category, description) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
				it.Name, it.Category, it.Description,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

package seeder

import (
	"context"

	"skill-matrix/internal/database"
)

type PersonnelSeeder struct{}

func (PersonnelSeeder) Name() string { return "personnel" }

type demoPerson struct {
	Name       string
	Email      string
	Role       string
	Experience string
	Skills     map[string]string
}

var demoPersonnel = []demoPerson{
	{
		Name: "Alice Tan", Email: "alice@example.com", Role: "Backend Engineer", Experience: "Senior",
		Skills: map[string]string{"Go": "Expert", "PostgreSQL": "Advanced", "Docker": "Intermediate"},
	},
	{
		Name: "Budi Santoso", Email: "budi@example.com", Role: "Frontend Engineer", Experience: "Mid-Level",
		Skills: map[string]string{"React": "Advanced", "TypeScript": "Expert"},
	},
	{
		Name: "Chen Wei", Email: "chen@example.com", Role: "Platform Engineer", Experience: "Senior",
		Skills: map[string]string{"Go": "Intermediate", "Kubernetes": "Advanced", "AWS": "Advanced", "Docker": "Expert"},
	},
	{
		Name: "Dewi Lestari", Email: "dewi@example.com", Role: "Data Engineer", Experience: "Junior",
		Skills: map[string]string{"Python": "Advanced", "PostgreSQL": "Expert"},
	},
}

func (PersonnelSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "personnel", "id", "name", "email", "role", "experience_level"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "personnel_skills", "person_id", "skill_id", "proficiency_level"); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Tx) error {
		for _, p := range demoPersonnel {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO personnel (name, email, role, experience_level) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
				p.Name, p.Email, p.Role, p.Experience,
			)
			if err != nil {
				return err
			}

			for skill, level := range p.Skills {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO personnel_skills (person_id, skill_id, proficiency_level)
					 SELECT p.id, s.id, $3 FROM personnel p, skills s
					 WHERE p.email = $1 AND s.name = $2
					 ON CONFLICT (person_id, skill_id) DO NOTHING`,
					p.Email, skill, level,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

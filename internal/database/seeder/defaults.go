package seeder

// Defaults returns the seeders run by `matchctl seed`, in dependency order.
func Defaults(admin AdminSeeder) []Seeder {
	return []Seeder{
		SkillsSeeder{},
		PersonnelSeeder{},
		ProjectsSeeder{},
		admin,
	}
}

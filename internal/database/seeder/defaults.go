package seeder

func Defaults() []Seeder {
	return []Seeder{
		RolesSeeder{},
		LevelsSeeder{},
		SkillsSeeder{},
	}
}

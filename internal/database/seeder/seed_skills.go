package seeder

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	items := []struct {
		Name     string
		Category matching.Category
	}{
		{Name: "Go", Category: matching.CategoryTechnical},
		{Name: "C#", Category: matching.CategoryTechnical},
		{Name: "TypeScript", Category: matching.CategoryTechnical},
		{Name: "PostgreSQL", Category: matching.CategoryTechnical},
		{Name: "Redis", Category: matching.CategoryTechnical},
		{Name: "Docker", Category: matching.CategoryTechnical},
		{Name: "Kubernetes", Category: matching.CategoryTechnical},
		{Name: "Communication", Category: matching.CategorySoft},
		{Name: "Leadership", Category: matching.CategorySoft},
		{Name: "Teamwork", Category: matching.CategorySoft},
	}

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Name, string(it.Category)})
	}
	return insertAll(ctx, db,
		`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
		rows,
	)
}

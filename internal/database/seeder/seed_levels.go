package seeder

import (
	"context"

	"talent-match/internal/database"
)

// LevelsSeeder installs the default proficiency ladder. Ranks must stay
// unique and positive; the matching engine rejects anything else.
type LevelsSeeder struct{}

func (LevelsSeeder) Name() string { return "proficiency_levels" }

func (LevelsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "proficiency_levels", "id", "name", "rank"); err != nil {
		return err
	}

	return insertAll(ctx, db,
		`INSERT INTO proficiency_levels (id, name, rank) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
		[][]any{
			{"Basic", 1},
			{"Intermediate", 2},
			{"Advanced", 3},
			{"Expert", 4},
		},
	)
}

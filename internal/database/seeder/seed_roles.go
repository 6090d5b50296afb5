package seeder

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/user"
)

type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "roles" }

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "roles", "id", "name"); err != nil {
		return err
	}

	return insertAll(ctx, db,
		`INSERT INTO roles (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
		[][]any{
			{user.RoleCollaborator},
			{user.RoleLeader},
			{user.RoleHRAdmin},
		},
	)
}

package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OpeningRepository interface {
	// FindSnapshot loads an opening with its requirements in stored order.
	// The bool is false when the opening does not exist.
	FindSnapshot(ctx context.Context, id uuid.UUID) (matching.Opening, bool, error)
}

type PostgresOpeningRepository struct {
	db database.Querier
}

func NewPostgresOpeningRepository(db database.Querier) *PostgresOpeningRepository {
	return &PostgresOpeningRepository{db: db}
}

func (r *PostgresOpeningRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (matching.Opening, bool, error) {
	op := matching.Opening{ID: id}
	err := r.db.QueryRow(ctx, `SELECT title FROM openings WHERE id = $1`, id).Scan(&op.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.Opening{}, false, nil
		}
		return matching.Opening{}, false, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.category, l.id, l.name, l.rank
		 FROM opening_skills os
		 JOIN skills s ON s.id = os.skill_id
		 JOIN proficiency_levels l ON l.id = os.level_id
		 WHERE os.opening_id = $1
		 ORDER BY os.position ASC, s.name ASC`,
		id,
	)
	if err != nil {
		return matching.Opening{}, false, err
	}
	defer rows.Close()

	op.Requirements = make([]matching.RequiredSkill, 0)
	for rows.Next() {
		var req matching.RequiredSkill
		var category string
		if err := rows.Scan(&req.Skill.ID, &req.Skill.Name, &category, &req.Level.ID, &req.Level.Name, &req.Level.Rank); err != nil {
			return matching.Opening{}, false, err
		}
		req.Skill.Category = matching.Category(category)
		op.Requirements = append(op.Requirements, req)
	}
	if err := rows.Err(); err != nil {
		return matching.Opening{}, false, err
	}
	return op, true, nil
}

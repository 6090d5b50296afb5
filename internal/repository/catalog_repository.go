package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"
)

type CatalogRepository interface {
	ListSkills(ctx context.Context) ([]matching.Skill, error)
	ListLevels(ctx context.Context) ([]matching.Level, error)
}

type PostgresCatalogRepository struct {
	db database.Querier
}

func NewPostgresCatalogRepository(db database.Querier) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListSkills(ctx context.Context) ([]matching.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Skill, 0)
	for rows.Next() {
		var s matching.Skill
		var category string
		if err := rows.Scan(&s.ID, &s.Name, &category); err != nil {
			return nil, err
		}
		s.Category = matching.Category(category)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListLevels(ctx context.Context) ([]matching.Level, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, rank FROM proficiency_levels ORDER BY rank ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Level, 0)
	for rows.Next() {
		var l matching.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.Rank); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

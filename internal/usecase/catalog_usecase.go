package usecase

import (
	"context"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"go.uber.org/zap"
)

type CatalogUsecase interface {
	ListSkills(ctx context.Context) ([]matching.Skill, error)
	ListLevels(ctx context.Context) ([]matching.Level, error)
}

type Catalog struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogUsecase(repo repository.CatalogRepository, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{repo: repo, logger: logger}
}

func (u *Catalog) ListSkills(ctx context.Context) ([]matching.Skill, error) {
	items, err := u.repo.ListSkills(ctx)
	if err != nil {
		u.logger.Error("list skills", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

// ListLevels returns the proficiency ladder in rank order. A ladder the
// engine could not order is reported as a data integrity error.
func (u *Catalog) ListLevels(ctx context.Context) ([]matching.Level, error) {
	items, err := u.repo.ListLevels(ctx)
	if err != nil {
		u.logger.Error("list levels", zap.Error(err))
		return nil, ErrInternal
	}

	reqs := make([]matching.RequiredSkill, 0, len(items))
	for _, l := range items {
		reqs = append(reqs, matching.RequiredSkill{Level: l})
	}
	if err := matching.Validate(matching.Opening{Requirements: reqs}, nil); err != nil {
		u.logger.Warn("proficiency ladder rejected", zap.Error(err))
		return nil, err
	}
	return items, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	skills []matching.Skill
	levels []matching.Level
	err    error
}

func (f fakeCatalog) ListSkills(context.Context) ([]matching.Skill, error) { return f.skills, f.err }
func (f fakeCatalog) ListLevels(context.Context) ([]matching.Level, error) { return f.levels, f.err }

func TestCatalog_ListLevels(t *testing.T) {
	ctx := context.Background()

	uc := NewCatalogUsecase(fakeCatalog{levels: []matching.Level{lvlBasic, lvlAdvanced}}, nil)
	levels, err := uc.ListLevels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	dup := matching.Level{ID: uuid.New(), Name: "Senior", Rank: 3}
	uc = NewCatalogUsecase(fakeCatalog{levels: []matching.Level{lvlBasic, lvlAdvanced, dup}}, nil)
	_, err = uc.ListLevels(ctx)
	require.ErrorIs(t, err, ErrDataIntegrity)

	uc = NewCatalogUsecase(fakeCatalog{err: errors.New("boom")}, nil)
	_, err = uc.ListSkills(ctx)
	require.ErrorIs(t, err, ErrInternal)
}

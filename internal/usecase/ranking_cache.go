package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RankingNotifier interface {
	RankingComputed(openingID uuid.UUID, model matching.ScoringModel, candidates int)
}

func RankingCacheKey(model matching.ScoringModel, openingID uuid.UUID) string {
	return "ranking:" + string(model) + ":" + openingID.String()
}

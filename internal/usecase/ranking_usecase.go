package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RankingQuery struct {
	OpeningID uuid.UUID
	Model     matching.ScoringModel
	Limit     int
	Offset    int
	MinScore  float64
	Refresh   bool
}

type RankingPage struct {
	OpeningID    uuid.UUID
	OpeningTitle string
	Model        matching.ScoringModel
	Total        int
	Limit        int
	Offset       int
	Cached       bool
	Candidates   []matching.MatchResult
}

type RankingOptions struct {
	Workers      int
	CacheTTL     time.Duration
	DefaultLimit int
	MaxLimit     int
}

type RankingUsecase interface {
	RankCandidates(ctx context.Context, q RankingQuery) (RankingPage, error)
}

// rankingSnapshot is what gets cached: the full ordered list, before any
// min_score filter or paging is applied.
type rankingSnapshot struct {
	Title   string                 `json:"title"`
	Results []matching.MatchResult `json:"results"`
}

type Ranking struct {
	openings   repository.OpeningRepository
	candidates repository.CandidateRepository
	rankers    map[matching.ScoringModel]*matching.Ranker
	cache      RankingCache
	notifier   RankingNotifier
	logger     *zap.Logger
	opts       RankingOptions
}

func NewRankingUsecase(
	openings repository.OpeningRepository,
	candidates repository.CandidateRepository,
	cache RankingCache,
	notifier RankingNotifier,
	logger *zap.Logger,
	opts RankingOptions,
) *Ranking {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = opts.DefaultLimit
	}
	return &Ranking{
		openings:   openings,
		candidates: candidates,
		rankers: map[matching.ScoringModel]*matching.Ranker{
			matching.ModelAveraged: matching.NewRanker(matching.AveragedScorer{}, opts.Workers),
			matching.ModelWeighted: matching.NewRanker(matching.WeightedScorer{}, opts.Workers),
		},
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		opts:     opts,
	}
}

func (u *Ranking) RankCandidates(ctx context.Context, q RankingQuery) (RankingPage, error) {
	if q.OpeningID == uuid.Nil || q.Offset < 0 || q.Limit < 0 || q.MinScore < 0 || q.MinScore > 100 {
		return RankingPage{}, ErrInvalidInput
	}
	if q.Model == "" {
		q.Model = matching.ModelAveraged
	}
	ranker, ok := u.rankers[q.Model]
	if !ok {
		return RankingPage{}, ErrInvalidInput
	}
	if q.Limit == 0 {
		q.Limit = u.opts.DefaultLimit
	}
	if q.Limit > u.opts.MaxLimit {
		q.Limit = u.opts.MaxLimit
	}

	log := u.logger.With(zap.String("opening_id", q.OpeningID.String()), zap.String("scoring_model", string(q.Model)))

	snap, cached, err := u.snapshot(ctx, ranker, q, log)
	if err != nil {
		return RankingPage{}, err
	}

	filtered := make([]matching.MatchResult, 0, len(snap.Results))
	for _, r := range snap.Results {
		if r.TotalPercentage >= q.MinScore {
			filtered = append(filtered, r)
		}
	}

	page := RankingPage{
		OpeningID:    q.OpeningID,
		OpeningTitle: snap.Title,
		Model:        q.Model,
		Total:        len(filtered),
		Limit:        q.Limit,
		Offset:       q.Offset,
		Cached:       cached,
		Candidates:   []matching.MatchResult{},
	}
	if q.Offset < len(filtered) {
		end := q.Offset + q.Limit
		if end > len(filtered) {
			end = len(filtered)
		}
		page.Candidates = filtered[q.Offset:end]
	}
	return page, nil
}

func (u *Ranking) snapshot(ctx context.Context, ranker *matching.Ranker, q RankingQuery, log *zap.Logger) (rankingSnapshot, bool, error) {
	key := RankingCacheKey(q.Model, q.OpeningID)
	if u.cache != nil && !q.Refresh {
		var snap rankingSnapshot
		hit, err := u.cache.GetJSON(ctx, key, &snap)
		if err != nil {
			log.Warn("ranking cache read failed", zap.Error(err))
		}
		if hit && err == nil {
			log.Debug("ranking served from cache", zap.Int("candidates", len(snap.Results)))
			return snap, true, nil
		}
	}

	opening, found, err := u.openings.FindSnapshot(ctx, q.OpeningID)
	if err != nil {
		log.Error("load opening", zap.Error(err))
		return rankingSnapshot{}, false, ErrInternal
	}
	if !found {
		log.Info("opening not found, returning empty ranking")
		return rankingSnapshot{Results: []matching.MatchResult{}}, false, nil
	}

	pool, err := u.candidates.ListEligible(ctx)
	if err != nil {
		log.Error("load candidate pool", zap.Error(err))
		return rankingSnapshot{}, false, ErrInternal
	}

	start := time.Now()
	results, err := ranker.Rank(ctx, opening, pool)
	if err != nil {
		if errors.Is(err, matching.ErrDataIntegrity) {
			log.Warn("ranking rejected", zap.Error(err))
			return rankingSnapshot{}, false, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return rankingSnapshot{}, false, ctxErr
		}
		log.Error("rank candidates", zap.Error(err))
		return rankingSnapshot{}, false, ErrInternal
	}
	log.Info("ranking computed",
		zap.Int("pool", len(pool)),
		zap.Int("ranked", len(results)),
		zap.Int("requirements", len(opening.Requirements)),
		zap.Duration("took", time.Since(start)),
	)

	snap := rankingSnapshot{Title: opening.Title, Results: results}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, snap, u.opts.CacheTTL); err != nil {
			log.Warn("ranking cache write failed", zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.RankingComputed(q.OpeningID, q.Model, len(results))
	}
	return snap, false, nil
}

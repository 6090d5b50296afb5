package matching

import (
	"bytes"
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

type Ranker struct {
	scorer  Scorer
	workers int
}

func NewRanker(scorer Scorer, workers int) *Ranker {
	if scorer == nil {
		scorer = AveragedScorer{}
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Ranker{scorer: scorer, workers: workers}
}

func (r *Ranker) Model() ScoringModel {
	return r.scorer.Model()
}

// Rank scores every candidate of the pool against the opening and returns
// the non-zero results ordered by total descending, then candidate ID.
// Scoring fans out across workers; ctx cancellation abandons the rest.
func (r *Ranker) Rank(ctx context.Context, opening Opening, pool []Candidate) ([]MatchResult, error) {
	if len(pool) == 0 {
		return []MatchResult{}, nil
	}
	if err := Validate(opening, pool); err != nil {
		return nil, err
	}

	type slot struct {
		res  MatchResult
		keep bool
	}
	slots := make([]slot, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range pool {
		if err := gctx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, keep, err := r.scorer.Score(opening, pool[i])
			if err != nil {
				return err
			}
			slots[i] = slot{res: res, keep: keep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]MatchResult, 0, len(pool))
	for _, s := range slots {
		if !s.keep {
			continue
		}
		out = append(out, s.res)
	}

	SortResults(out)
	return out, nil
}

func SortResults(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].TotalPercentage != results[j].TotalPercentage {
			return results[i].TotalPercentage > results[j].TotalPercentage
		}
		return bytes.Compare(results[i].CandidateID[:], results[j].CandidateID[:]) < 0
	})
}

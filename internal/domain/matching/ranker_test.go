package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func rankingFixture() (Opening, []Candidate) {
	goSkill, sql, comm := techSkill("Go"), techSkill("PostgreSQL"), softSkill("Communication")
	opening := Opening{ID: uuid.New(), Title: "Backend Engineer", Requirements: []RequiredSkill{
		{Skill: goSkill, Level: advanced},
		{Skill: sql, Level: intermediate},
		{Skill: comm, Level: basic},
	}}

	pool := []Candidate{
		candidate("nobody"),
		candidate("partial", HeldSkill{Skill: goSkill, Level: basic}),
		candidate("strong",
			HeldSkill{Skill: goSkill, Level: expert},
			HeldSkill{Skill: sql, Level: advanced},
			HeldSkill{Skill: comm, Level: basic},
		),
		candidate("middle",
			HeldSkill{Skill: goSkill, Level: intermediate},
			HeldSkill{Skill: sql, Level: intermediate},
		),
	}
	return opening, pool
}

func TestRanker_SortsAndDropsZero(t *testing.T) {
	opening, pool := rankingFixture()

	out, err := NewRanker(AveragedScorer{}, 2).Rank(context.Background(), opening, pool)
	require.NoError(t, err)
	require.Len(t, out, 3)

	require.Equal(t, "strong", out[0].DisplayName)
	require.Equal(t, 100.0, out[0].TotalPercentage)
	require.Equal(t, "middle", out[1].DisplayName)
	require.Equal(t, 55.7, out[1].TotalPercentage)
	require.Equal(t, "partial", out[2].DisplayName)
	require.Equal(t, 11.0, out[2].TotalPercentage)

	for i := range out {
		require.Greater(t, out[i].TotalPercentage, 0.0)
		if i > 0 {
			require.GreaterOrEqual(t, out[i-1].TotalPercentage, out[i].TotalPercentage)
		}
	}
}

func TestRanker_EmptyPool(t *testing.T) {
	opening, _ := rankingFixture()

	out, err := NewRanker(nil, 0).Rank(context.Background(), opening, nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestRanker_NoRequirementsEveryoneFull(t *testing.T) {
	_, pool := rankingFixture()

	out, err := NewRanker(AveragedScorer{}, 4).Rank(context.Background(), Opening{ID: uuid.New()}, pool)
	require.NoError(t, err)
	require.Len(t, out, len(pool))
	for _, r := range out {
		require.Equal(t, 100.0, r.TotalPercentage)
	}
}

func TestRanker_TieBreakByCandidateID(t *testing.T) {
	goSkill := techSkill("Go")
	opening := Opening{Requirements: []RequiredSkill{{Skill: goSkill, Level: advanced}}}

	var pool []Candidate
	for i := 0; i < 20; i++ {
		pool = append(pool, candidate(fmt.Sprintf("tied-%02d", i), HeldSkill{Skill: goSkill, Level: intermediate}))
	}

	first, err := NewRanker(AveragedScorer{}, 8).Rank(context.Background(), opening, pool)
	require.NoError(t, err)
	require.Len(t, first, 20)
	for i := 1; i < len(first); i++ {
		require.Equal(t, first[i-1].TotalPercentage, first[i].TotalPercentage)
		require.Less(t, first[i-1].CandidateID.String(), first[i].CandidateID.String())
	}

	for run := 0; run < 5; run++ {
		again, err := NewRanker(AveragedScorer{}, 3).Rank(context.Background(), opening, pool)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRanker_Idempotent(t *testing.T) {
	opening, pool := rankingFixture()
	r := NewRanker(WeightedScorer{}, 4)

	a, err := r.Rank(context.Background(), opening, pool)
	require.NoError(t, err)
	b, err := r.Rank(context.Background(), opening, pool)
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, string(ja), string(jb))
}

func TestRanker_DoesNotMutateInputs(t *testing.T) {
	opening, pool := rankingFixture()
	before, err := json.Marshal(struct {
		O Opening
		P []Candidate
	}{opening, pool})
	require.NoError(t, err)

	_, err = NewRanker(AveragedScorer{}, 4).Rank(context.Background(), opening, pool)
	require.NoError(t, err)

	after, err := json.Marshal(struct {
		O Opening
		P []Candidate
	}{opening, pool})
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestRanker_MalformedPoolFails(t *testing.T) {
	opening, pool := rankingFixture()
	pool[1].Skills[0].Level = Level{ID: uuid.New(), Name: "Broken", Rank: -1}

	out, err := NewRanker(AveragedScorer{}, 4).Rank(context.Background(), opening, pool)
	require.ErrorIs(t, err, ErrDataIntegrity)
	require.Nil(t, out)
}

func TestRanker_CancelledContext(t *testing.T) {
	opening, pool := rankingFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRanker(AveragedScorer{}, 1).Rank(ctx, opening, pool)
	require.ErrorIs(t, err, context.Canceled)
}

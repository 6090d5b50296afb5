package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRankingUsecase struct {
	last usecase.RankingQuery
	page usecase.RankingPage
	err  error
}

func (f *fakeRankingUsecase) RankCandidates(_ context.Context, q usecase.RankingQuery) (usecase.RankingPage, error) {
	f.last = q
	if f.err != nil {
		return usecase.RankingPage{}, f.err
	}
	p := f.page
	p.OpeningID = q.OpeningID
	p.Model = q.Model
	return p, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRankingApp(uc usecase.RankingUsecase, model matching.ScoringModel) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewRankingHandler(uc, model).RegisterRoutes(app.Group("/openings"))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func TestRankingHandler_PassesQuery(t *testing.T) {
	uc := &fakeRankingUsecase{page: usecase.RankingPage{
		Total: 1,
		Candidates: []matching.MatchResult{{
			CandidateID:     uuid.MustParse("00000000-0000-4000-8000-000000000001"),
			DisplayName:     "Ana",
			TotalPercentage: 66.5,
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			SkillDetails:    []matching.SkillMatchDetail{},
		}},
	}}
	app := newRankingApp(uc, matching.ModelWeighted)
	openingID := uuid.New()

	status, env := get(t, app, fmt.Sprintf("/openings/%s/candidates?limit=5&offset=10&min_score=40.5&refresh=TRUE", openingID))
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, usecase.RankingQuery{
		OpeningID: openingID,
		Model:     matching.ModelWeighted,
		Limit:     5,
		Offset:    10,
		MinScore:  40.5,
		Refresh:   true,
	}, uc.last)

	var data struct {
		ScoringModel string `json:"scoring_model"`
		Total        int    `json:"total"`
		Candidates   []struct {
			DisplayName     string  `json:"display_name"`
			TotalPercentage float64 `json:"total_percentage"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "weighted", data.ScoringModel)
	require.Equal(t, 1, data.Total)
	require.Equal(t, 66.5, data.Candidates[0].TotalPercentage)
}

func TestRankingHandler_BadRequests(t *testing.T) {
	app := newRankingApp(&fakeRankingUsecase{}, matching.ModelAveraged)
	id := uuid.NewString()

	for _, path := range []string{
		"/openings/not-a-uuid/candidates",
		"/openings/" + uuid.Nil.String() + "/candidates",
		"/openings/" + id + "/candidates?limit=abc",
		"/openings/" + id + "/candidates?offset=-1",
		"/openings/" + id + "/candidates?min_score=120",
		"/openings/" + id + "/candidates?min_score=NaN",
	} {
		status, env := get(t, app, path)
		require.Equal(t, fiber.StatusBadRequest, status, path)
		require.Equal(t, fiber.StatusBadRequest, env.Status, path)
	}
}

func TestRankingHandler_ErrorMapping(t *testing.T) {
	id := uuid.NewString()
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("candidate x: %w", usecase.ErrDataIntegrity), fiber.StatusUnprocessableEntity},
		{usecase.ErrInvalidInput, fiber.StatusBadRequest},
		{context.Canceled, fiber.StatusServiceUnavailable},
		{usecase.ErrInternal, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		app := newRankingApp(&fakeRankingUsecase{err: tc.err}, matching.ModelAveraged)
		status, _ := get(t, app, "/openings/"+id+"/candidates")
		require.Equal(t, tc.status, status, tc.err.Error())
	}
}

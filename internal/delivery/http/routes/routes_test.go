package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type echoRanking struct{}

func (echoRanking) RankCandidates(_ context.Context, q usecase.RankingQuery) (usecase.RankingPage, error) {
	return usecase.RankingPage{OpeningID: q.OpeningID, Model: q.Model, Candidates: []matching.MatchResult{}}, nil
}

type emptyCatalog struct{}

func (emptyCatalog) ListSkills(context.Context) ([]matching.Skill, error) { return nil, nil }
func (emptyCatalog) ListLevels(context.Context) ([]matching.Level, error) { return nil, nil }

func newTestApp(t *testing.T) (*fiber.App, *jwt.HMACService) {
	t.Helper()
	svc := jwt.NewHMACService("a", "r", time.Minute, time.Hour)
	rank := echoRanking{}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewRegistry(Handlers{
		Health:    handler.NewHealthHandler(nil),
		Auth:      handler.NewAuthHandler(usecase.NewAuthUsecase(nil, svc)),
		Catalog:   handler.NewCatalogHandler(emptyCatalog{}),
		RankingV1: handler.NewRankingHandler(rank, matching.ModelWeighted),
		RankingV2: handler.NewRankingHandler(rank, matching.ModelAveraged),
		AuthMW:    middleware.NewAuthMiddleware(svc),
	}).Register(app)
	return app, svc
}

func call(t *testing.T, app *fiber.App, path, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func TestRoutes_ScoringModelPerVersion(t *testing.T) {
	app, svc := newTestApp(t)
	hr, err := svc.GenerateAccessToken(uuid.New(), "hr@example.com", user.RoleHRAdmin)
	require.NoError(t, err)

	path := "/openings/" + uuid.NewString() + "/candidates"

	status, env := call(t, app, "/api/v1"+path, hr)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "weighted", env["data"].(map[string]any)["scoring_model"])

	status, env = call(t, app, "/api/v2"+path, hr)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "averaged", env["data"].(map[string]any)["scoring_model"])
}

func TestRoutes_Access(t *testing.T) {
	app, svc := newTestApp(t)
	collab, err := svc.GenerateAccessToken(uuid.New(), "", user.RoleCollaborator)
	require.NoError(t, err)

	path := "/api/v2/openings/" + uuid.NewString() + "/candidates"
	status, _ := call(t, app, path, "")
	require.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = call(t, app, path, collab)
	require.Equal(t, fiber.StatusForbidden, status)

	// Any authenticated role may read the catalog.
	status, _ = call(t, app, "/api/v1/levels", collab)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "/api/v1/skills", "")
	require.Equal(t, fiber.StatusUnauthorized, status)

	status, env := call(t, app, "/health", "")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "disabled", env["data"].(map[string]any)["database"])
}

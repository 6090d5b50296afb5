package handler

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// RankingHandler serves one scoring model. The v1 API keeps the weighted
// model, v2 serves the averaged one.
type RankingHandler struct {
	uc    usecase.RankingUsecase
	model matching.ScoringModel
}

func NewRankingHandler(uc usecase.RankingUsecase, model matching.ScoringModel) *RankingHandler {
	return &RankingHandler{uc: uc, model: model}
}

// RegisterRoutes expects r to be the /openings group.
func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:opening_id/candidates", h.ListCandidates)
}

func (h *RankingHandler) ListCandidates(c fiber.Ctx) error {
	openingID, err := uuid.Parse(c.Params("opening_id"))
	if err != nil || openingID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opening id", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}
	minScore, err := parseQueryFloat(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}
	refresh := strings.EqualFold(strings.TrimSpace(c.Query("refresh")), "true")

	page, err := h.uc.RankCandidates(c.Context(), usecase.RankingQuery{
		OpeningID: openingID,
		Model:     h.model,
		Limit:     limit,
		Offset:    offset,
		MinScore:  minScore,
		Refresh:   refresh,
	})
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RankingResponse{
		OpeningID:    page.OpeningID,
		OpeningTitle: page.OpeningTitle,
		ScoringModel: page.Model,
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
		Cached:       page.Cached,
		Candidates:   page.Candidates,
	})
}

func mapRankingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrDataIntegrity):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Proficiency levels are inconsistent", nil, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New(key + " must be non-negative")
	}
	return v, nil
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, errors.New(key + " must be within 0..100")
	}
	return v, nil
}

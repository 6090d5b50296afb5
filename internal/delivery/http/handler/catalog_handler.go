package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/skills", auth, h.ListSkills)
	r.Get("/levels", auth, h.ListLevels)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SkillResponse{ID: it.ID, Name: it.Name, Category: string(it.Category)})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListLevels(c fiber.Ctx) error {
	items, err := h.uc.ListLevels(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrDataIntegrity) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Proficiency levels are inconsistent", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.LevelResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.LevelResponse{ID: it.ID, Name: it.Name, Rank: it.Rank})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

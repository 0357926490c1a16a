package handler

import (
	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TrendingHandler struct {
	uc usecase.TrendingUsecase
}

func NewTrendingHandler(uc usecase.TrendingUsecase) *TrendingHandler {
	return &TrendingHandler{uc: uc}
}

func (h *TrendingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skills")
	grp.Get("/trending", h.GetTrendingSkills)
}

func (h *TrendingHandler) GetTrendingSkills(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 10)

	items, err := h.uc.GetTrendingSkills(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.TrendingSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TrendingSkillResponse{
			Skill:      it.Skill,
			Demand:     it.Demand,
			Percentage: it.Percentage,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

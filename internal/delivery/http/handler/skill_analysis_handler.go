package handler

import (
	"errors"

	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillAnalysisHandler struct {
	uc usecase.SkillAnalysisUsecase
}

func NewSkillAnalysisHandler(uc usecase.SkillAnalysisUsecase) *SkillAnalysisHandler {
	return &SkillAnalysisHandler{uc: uc}
}

func (h *SkillAnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skills")
	grp.Get("/analysis", h.AnalyzeSkills)
}

func (h *SkillAnalysisHandler) AnalyzeSkills(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	res, err := h.uc.AnalyzeSkills(c.Context(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCandidateNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	gaps := make([]dto.SkillGapResponse, 0, len(res.MissingSkills))
	for _, g := range res.MissingSkills {
		gaps = append(gaps, dto.SkillGapResponse{Skill: g.Skill, Demand: g.Demand})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillAnalysisResponse{
		PostingsAnalyzed:       res.PostingsAnalyzed,
		AverageMatchPercentage: res.AverageMatchPercentage,
		MissingSkills:          gaps,
	})
}

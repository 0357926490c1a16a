package handler

import (
	"errors"
	"strconv"

	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/domain/matching"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	minMatch := parseQueryInt(c, "min_match", 0)
	sortBy := c.Query("sort_by")
	if sortBy != matching.SortByRecommendationScore {
		sortBy = matching.SortByMatchPercentage
	}

	res, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationParams{
		Limit:              limit,
		MinMatchPercentage: minMatch,
		SortBy:             sortBy,
	})
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toRecommendationResponse(res))
}

func toRecommendationResponse(res usecase.RecommendationResult) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		RequiresVerification: res.RequiresVerification,
		Recommendations:      toEntryResponses(res.Recommendations),
		Categories: dto.RecommendationCategoriesResponse{
			PerfectMatch: toEntryResponses(res.Categories.PerfectMatch),
			GoodMatch:    toEntryResponses(res.Categories.GoodMatch),
			PartialMatch: toEntryResponses(res.Categories.PartialMatch),
		},
		Stats: dto.RecommendationStatsResponse{
			Total:        res.Stats.Total,
			PerfectMatch: res.Stats.PerfectMatch,
			GoodMatch:    res.Stats.GoodMatch,
			PartialMatch: res.Stats.PartialMatch,
		},
	}
}

func toEntryResponses(entries []matching.Entry) []dto.RecommendationEntryResponse {
	out := make([]dto.RecommendationEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RecommendationEntryResponse{
			JobID:               e.Posting.ID,
			Title:               e.Posting.Title,
			CompanyName:         e.Posting.Company,
			JobType:             string(e.Posting.JobType),
			ApplicationDeadline: e.Posting.Deadline,
			MatchingSkills:      e.Match.MatchingSkills,
			MissingSkills:       e.Match.MissingSkills,
			MatchPercentage:     e.Match.MatchPercentage,
			SkillCoverage:       e.Match.SkillCoverage,
			IsEligible:          e.IsEligible,
			RecommendationScore: e.RecommendationScore,
		})
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

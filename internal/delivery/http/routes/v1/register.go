package v1

import (
	"placement-portal/internal/config"
	"placement-portal/internal/database"
	"placement-portal/internal/delivery/http/handler"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/infrastructure/cache"
	"placement-portal/internal/pkg/jwt"
	"placement-portal/internal/repository"
	"placement-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresCandidateProfileRepository(db)
	postingRepo := repository.NewPostgresPostingRepository(db)

	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, postingRepo)
	trendingUC := usecase.NewTrendingUsecase(postingRepo, redis)
	analysisUC := usecase.NewSkillAnalysisUsecase(profileRepo, postingRepo)

	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	trendingHandler := handler.NewTrendingHandler(trendingUC)
	analysisHandler := handler.NewSkillAnalysisHandler(analysisUC)

	// Trending demand is aggregate data, no identity required.
	trendingHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	recommendationHandler.RegisterRoutes(protected)
	analysisHandler.RegisterRoutes(protected)
}

package routes

import (
	"placement-portal/internal/config"
	"placement-portal/internal/database"
	v1 "placement-portal/internal/delivery/http/routes/v1"
	"placement-portal/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis)
}

package handlers

import (
	"walletbook/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Service
}

func NewHealthHandler(db *gorm.DB, cacheSvc *cache.Service) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheSvc}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "connected"
		if err := h.cache.HealthCheck(c.Context()); err != nil {
			redisStatus = "unreachable"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}

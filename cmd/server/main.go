// Package main is the entry point for the application. It initializes
// all dependencies, sets up the HTTP server, and starts the
// application.
package main

import (
	"context"
	"log"
	"time"

	"walletbook/internal/config"
	"walletbook/internal/repositories"
	"walletbook/internal/repositories/cache"
	"walletbook/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	db, err := repositories.Connect()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := repositories.ConfigurePool(db); err != nil {
		log.Fatalf("failed to configure database pool: %v", err)
	}
	log.Println("connected to database")

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}
	}()

	// Redis is optional; without it wallet reads always hit Postgres.
	var cacheSvc *cache.Service
	if config.GetEnv("REDIS_ENABLED", "true") == "true" {
		client := cache.NewClient(&cache.Config{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		// TTL stays short so a read racing an invalidation cannot pin a
		// stale balance for long.
		cacheSvc = cache.NewService(client, config.CacheTTL())

		if err := cacheSvc.HealthCheck(context.Background()); err != nil {
			log.Printf("redis unavailable, continuing without cache: %v", err)
			cacheSvc = nil
		} else {
			defer func() {
				if err := cacheSvc.Close(); err != nil {
					log.Printf("failed to close redis connection: %v", err)
				}
			}()
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "too many requests, please try again later",
				})
			},
		}))
	}

	routes.SetupRoutes(app, db, cacheSvc)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

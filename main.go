package main

import (
	"log"

	"storefront/cache"
	"storefront/config"
	"storefront/database"
	"storefront/logger"
	"storefront/middleware"
	authRoutes "storefront/routers/authRoutes"
	checkoutRoutes "storefront/routers/checkoutRoutes"
	dashboardRoutes "storefront/routers/dashboardRoutes"
	publicRoutes "storefront/routers/publicRoutes"
	"storefront/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	if err := logger.Init(config.AppConfig.LogMode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Log.Sync()

	if err := database.ConnectDb(config.AppConfig); err != nil {
		logger.Log.Fatal("Failed to connect to the cache database", "driver", config.AppConfig.CacheDriver, "error", err)
	}

	store := services.Init(config.AppConfig)
	scheduler, err := cache.StartPurgeScheduler(store, config.AppConfig.CachePurgeSpec)
	if err != nil {
		logger.Log.Fatal("Failed to start cache purge scheduler", "spec", config.AppConfig.CachePurgeSpec, "error", err)
	}
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:   config.AppConfig.AppName,
		BodyLimit: (config.AppConfig.MaxUploadMB + 1) << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization,X-Request-ID",
		AllowCredentials: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.SessionMiddleware)

	publicRoutes.SetupPublicRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	logger.Log.Info("Server is running", "port", config.AppConfig.Port, "api", config.AppConfig.APIBaseURL, "cache", config.AppConfig.CacheDriver)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logger.Log.Fatal("Server stopped", "error", err)
	}
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"movie_catalog/config"
	"movie_catalog/database"
	"movie_catalog/handler"
	"movie_catalog/middleware"
	"movie_catalog/router"
	"movie_catalog/store"
	"movie_catalog/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		hclog.Default().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:       "movie-catalog",
		Level:      hclog.LevelFromString(settings.LogLevel),
		JSONFormat: settings.LogFormat == "json",
	})

	db, err := database.Connect(settings, log.Named("database"))
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get sql pool", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	app := fiber.New(fiber.Config{
		AppName:               "movie-catalog",
		ErrorHandler:          utils.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.Recover(log))
	app.Use(middleware.Cors(settings.CorsOrigins))

	h := handler.New(store.New(db), log.Named("handler"))
	router.SetupRoutes(app, h, settings.BasePath, middleware.AccessLog(log))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down", "timeout", settings.ShutdownTimeout)
		if err := app.ShutdownWithTimeout(settings.ShutdownTimeout); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("listening", "port", settings.Port, "base_path", settings.BasePath)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Error("server stopped", "error", err)
	}
}

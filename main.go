package main

import (
	"log"

	"go.uber.org/zap"

	"shortlink/auth"
	"shortlink/config"
	"shortlink/database"
	"shortlink/handlers"
	"shortlink/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := database.Connect(cfg.DSN()); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	auth.Init(cfg.JWTSecret)

	geo := services.NewGeoService(cfg.GeoAPIURL, cfg.GeoTimeout, cfg.GeoCacheTTL)
	router := handlers.NewRouter(cfg, geo, logger)

	logger.Info("URL shortener starting", zap.String("address", cfg.ServerAddress))
	if err := router.Run(cfg.ServerAddress); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

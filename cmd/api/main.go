package main

import (
	"log"

	_ "solar_marketplace/docs"
	"solar_marketplace/internal/adapter/http/routes"
	"solar_marketplace/internal/infrastructure/config"
	"solar_marketplace/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Solar Marketplace API
// @version         1.0
// @description     Solar installation quotation marketplace: customers post requests, vendors quote, customers compare and accept.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sugar := logger.New(cfg.LogLevel)
	defer func() { _ = sugar.Sync() }()

	if err := routes.Run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}

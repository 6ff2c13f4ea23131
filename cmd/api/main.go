package main

import (
	"log"

	_ "delta33_backoffice/docs"
	"delta33_backoffice/internal/adapter/http/routes"
	"delta33_backoffice/internal/config"
	"delta33_backoffice/pkg/logger"
)

// @title           Delta 33 Backoffice API
// @version         1.0
// @description     Single-tenant business management service (appointments, budgets, agreement traces, surveys) backed by a local archive file.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if err := routes.Run(cfg, zlog); err != nil {
		zlog.Fatal("Failed to startup the application: " + err.Error())
	}
}

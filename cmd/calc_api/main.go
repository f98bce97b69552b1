// Package main in2post Calculator API
// @title in2post Calculator API
// @version 1.0
// @description Converts whitespace separated infix arithmetic expressions to postfix notation and evaluates them
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/in2post/docs"
	"github.com/DjordjeVuckovic/in2post/internal/api/router"
	"github.com/DjordjeVuckovic/in2post/internal/api/server"
	"github.com/DjordjeVuckovic/in2post/internal/calc"
	"github.com/DjordjeVuckovic/in2post/internal/storage/factory"
	"github.com/DjordjeVuckovic/in2post/pkg/config/env"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 15 * time.Second

func main() {
	slog.SetLogLoggerLevel(env.LogLevel(slog.LevelInfo))

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	backend, err := factory.NewHistory(startCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create calculation history", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s := server.New(sCfg, backend.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "in2post Calculator API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.New(), backend.History)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	slog.Info("Starting server", "port", sCfg.Port, "storage", cfg.StorageConfig.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		backend.Close()
		os.Exit(1)
	}
}

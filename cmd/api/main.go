package main

import (
	"context"
	"net/http"
	"time"

	"pet-adoption-dashboard/internal/app"
	"pet-adoption-dashboard/internal/platform/config"
	"pet-adoption-dashboard/internal/platform/logger"
	"pet-adoption-dashboard/internal/router"
)

// @title        Pet Adoption Dashboard API
// @version      1.0
// @description  Adoptable dogs filters/chart/table and dice running-mean simulation.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	log := logger.FromStrings(cfg.LogLevel, cfg.LogFormat, cfg.AppName)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	a, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		config.Exitf("load dataset: %v", err)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Dogs:   a.Dogs,
			Dice:   a.Dice,
			Logger: log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		config.Exitf("server error: %v", err)
	}
}

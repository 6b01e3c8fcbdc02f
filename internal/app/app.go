// Package app arma los servicios a partir de config.App. Lo usan cmd/api y cmd/dashctl.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-dashboard/internal/adapters/storage/csvfile"
	pg "pet-adoption-dashboard/internal/adapters/storage/postgres"
	"pet-adoption-dashboard/internal/adapters/storage/sqlite"
	"pet-adoption-dashboard/internal/adapters/storage/sqlsource"
	"pet-adoption-dashboard/internal/domain/dice"
	"pet-adoption-dashboard/internal/domain/dogs"
	"pet-adoption-dashboard/internal/platform/config"
	"pet-adoption-dashboard/internal/platform/httpclient"
	"pet-adoption-dashboard/internal/platform/logger"
)

var ErrUnknownSource = errors.New("unknown dogs source")

type App struct {
	Dogs *dogs.Service
	Dice *dice.Service
}

// New carga el dataset una sola vez; cualquier error (p.ej. timestamp mal
// formado) aborta el arranque.
func New(ctx context.Context, cfg config.App, log logger.Logger) (*App, error) {
	src, closeFn, err := OpenSource(cfg.Dogs)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	start := time.Now()
	ds, err := dogs.Load(ctx, src, dogs.LoadOptions{Country: cfg.Dogs.Country})
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", map[string]any{
		"source":      cfg.Dogs.Source,
		"dogs":        ds.Len(),
		"regions":     len(ds.Regions()),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return &App{
		Dogs: dogs.NewService(ds, dogs.ServiceOptions{
			LegacyOtherFilter: cfg.Dogs.LegacyOtherFilter,
			CacheSize:         cfg.Dogs.CacheSize,
			Logger:            log,
		}),
		Dice: dice.NewService(dice.ServiceOptions{
			Limits: dice.Limits{
				MaxSides:  cfg.Dice.MaxSides,
				MaxRolls:  cfg.Dice.MaxRolls,
				MaxTrials: cfg.Dice.MaxTrials,
				MaxPoints: cfg.Dice.MaxPoints,
			},
			Logger: log,
		}),
	}, nil
}

// OpenSource elige la fuente según DOGS_SOURCE. closeFn libera la conexión
// SQL (si hay) y siempre es no-nil.
func OpenSource(cfg config.Dogs) (src dogs.Source, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", "csv":
		return csvfile.NewFileSource(cfg.CSVPath), noop, nil
	case "http":
		if strings.TrimSpace(cfg.CSVURL) == "" {
			return nil, noop, errors.New("DOGS_CSV_URL is required for the http source")
		}
		return csvfile.NewHTTPSource(cfg.CSVURL, httpclient.New(0)), noop, nil
	case "postgres":
		if strings.TrimSpace(cfg.DSN) == "" {
			return nil, noop, errors.New("DB_DSN is required for the postgres source")
		}
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		return sqlRepo(db, cfg.Table)
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlRepo(db, cfg.Table)
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

func sqlRepo(db *sql.DB, table string) (dogs.Source, func() error, error) {
	repo, err := sqlsource.NewDogsRepo(db, table)
	if err != nil {
		_ = db.Close()
		return nil, func() error { return nil }, err
	}
	return repo, db.Close, nil
}

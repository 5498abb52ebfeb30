package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"bikeshare/config"
	"bikeshare/services"
	"bikeshare/session"
	"bikeshare/storage"
	"bikeshare/utils"
)

func main() {
	logger := utils.NewLogger()

	app := &cli.App{
		Name:  "bikeshare",
		Usage: "explore US bikeshare trip data interactively",
		Action: func(c *cli.Context) error {
			return run(c.Context, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("bikeshare stopped: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *utils.Logger) error {
	cfg := config.Load(logger)
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("[config] %v, keeping the default level", err)
	}

	cities, err := config.LoadCityTable(cfg.CitiesConfigPath)
	if err != nil {
		return fmt.Errorf("loading city table: %w", err)
	}
	logger.Info("Starting bikeshare | source: %s | cities: %v | page size: %d", cfg.DataSource, cities.Names(), cfg.PageSize)

	source, err := newSource(cfg, logger)
	if err != nil {
		return err
	}
	defer source.Close()

	statsSvc := services.NewStatsService(logger)
	s := session.New(session.Options{
		Prompter: session.NewPrompter(os.Stdin, os.Stdout),
		Cities:   cities.Names(),
		Loader:   services.NewLoader(source, cities, logger),
		Stats:    statsSvc,
		Printer:  services.NewPrinter(os.Stdout),
		PageSize: cfg.PageSize,
		Logger:   logger,
	})
	return s.Run(ctx)
}

func newSource(cfg *config.Config, logger *utils.Logger) (storage.TripSource, error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		return storage.NewCSVSource(cfg.DataDir), nil
	case config.SourcePostgres:
		retry := &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		}
		source, err := storage.NewPostgresSource(cfg.DSN(), retry)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			return nil, err
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}
}

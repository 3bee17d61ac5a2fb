package main

import (
	"log/slog"

	"github.com/helixml/almanac"
	"github.com/helixml/almanac/internal/config"
)

// clientOptions returns the almanac.Option slice shared by every entrypoint.
// Callers append entrypoint-specific options before calling almanac.New.
func clientOptions(cfg config.AppConfig, logger *slog.Logger) []almanac.Option {
	opts := []almanac.Option{
		almanac.WithConfig(cfg),
		almanac.WithLogger(logger),
	}
	if !cfg.Source().CacheEnabled() {
		opts = append(opts, almanac.WithoutCache())
	}
	return opts
}

// prepareDataDir creates the data directory when the input cache will live
// in a local SQLite file.
func prepareDataDir(cfg config.AppConfig) error {
	if !cfg.Source().CacheEnabled() || !config.IsSQLite(cfg.DBURL()) {
		return nil
	}
	return cfg.EnsureDataDir()
}

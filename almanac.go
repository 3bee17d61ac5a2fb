// Package almanac runs the seed almanac puzzle and answers interval pipeline
// queries over structured almanac documents.
//
// Basic usage:
//
//	client, err := almanac.New(ctx,
//	    almanac.WithSQLite(".almanac/almanac.db"),
//	    almanac.WithToken(os.Getenv("TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.Runner.Run(ctx, 5, puzzle.PartB)
//	fmt.Println(result.Answer)
package almanac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/application/solution"
	"github.com/helixml/almanac/infrastructure/input"
	"github.com/helixml/almanac/infrastructure/persistence"
	"github.com/helixml/almanac/internal/database"
)

// ErrClientClosed indicates the client has already been closed.
var ErrClientClosed = errors.New("almanac: client is closed")

// Client wires the solution registry, input loading and the almanac query service.
type Client struct {
	Runner  *service.Runner
	Almanac *service.Almanac

	db      *database.Database
	source  input.Source
	cache   *input.CachedSource
	closers []io.Closer
	logger  *slog.Logger
	closed  atomic.Bool
}

// New creates a Client. The input cache database is opened only when a
// database URL is configured, caching is enabled and inputs are downloaded.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{closers: cfg.closers, logger: logger}

	switch {
	case cfg.loader != nil:
		client.source = cfg.loader
	case cfg.inputFile != "":
		client.source = input.NewFileSource(cfg.inputFile)
	default:
		var src input.Source = input.NewHTTPSource(cfg.source, cfg.token, cfg.httpOpts...)
		if cfg.cache && cfg.dbURL != "" {
			db, err := database.NewDatabase(ctx, cfg.dbURL)
			if err != nil {
				return nil, fmt.Errorf("open input cache: %w", err)
			}
			if err := persistence.AutoMigrate(db); err != nil {
				return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), db.Close())
			}
			client.db = &db
			client.cache = input.NewCachedSource(src, persistence.NewInputStore(db), cfg.source.Year(), logger)
			src = client.cache
		}
		client.source = src
	}

	client.Runner = service.NewRunner(solution.Registry(), client.source, logger)
	client.Almanac = service.NewAlmanac(cfg.workers, logger)
	return client, nil
}

// Close releases the database and any registered resources.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			c.logger.Error("failed to close resource", slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Cached reports whether downloaded inputs are cached in a database.
func (c *Client) Cached() bool {
	return c.db != nil
}

// ForgetInput drops the cached input for day so the next run downloads it
// again. It does nothing when inputs are not cached.
func (c *Client) ForgetInput(ctx context.Context, day int) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Forget(ctx, day)
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

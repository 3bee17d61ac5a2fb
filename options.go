package almanac

import (
	"io"
	"log/slog"

	"github.com/helixml/almanac/infrastructure/input"
	"github.com/helixml/almanac/internal/config"
)

// clientConfig holds configuration for Client construction.
// Defaults come from internal/config.
type clientConfig struct {
	dbURL     string
	cache     bool
	token     string
	source    config.SourceConfig
	inputFile string
	loader    input.Source
	logger    *slog.Logger
	workers   int
	httpOpts  []input.HTTPOption
	closers   []io.Closer
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		cache:   true,
		source:  config.NewSourceConfig(),
		workers: config.DefaultWorkers,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig applies application configuration: database URL, token, input
// source settings and worker count.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.dbURL = cfg.DBURL()
		c.token = cfg.Token()
		c.source = cfg.Source()
		c.cache = cfg.Source().CacheEnabled()
		c.workers = cfg.Workers()
	}
}

// WithSQLite caches downloaded inputs in the SQLite file at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) { c.dbURL = "sqlite:///" + path }
}

// WithPostgres caches downloaded inputs in PostgreSQL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) { c.dbURL = dsn }
}

// WithoutCache disables the input cache; every run downloads its input.
func WithoutCache() Option {
	return func(c *clientConfig) { c.cache = false }
}

// WithToken sets the puzzle site session token.
func WithToken(token string) Option {
	return func(c *clientConfig) { c.token = token }
}

// WithSourceConfig sets the download settings.
func WithSourceConfig(s config.SourceConfig) Option {
	return func(c *clientConfig) { c.source = s }
}

// WithHTTPOptions passes options to the download source.
func WithHTTPOptions(opts ...input.HTTPOption) Option {
	return func(c *clientConfig) { c.httpOpts = append(c.httpOpts, opts...) }
}

// WithInputFile reads every input from a local file instead of downloading.
func WithInputFile(path string) Option {
	return func(c *clientConfig) { c.inputFile = path }
}

// WithInputSource replaces the input source entirely.
func WithInputSource(s input.Source) Option {
	return func(c *clientConfig) { c.loader = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithWorkers sets the goroutines used per pipeline stage for document queries.
func WithWorkers(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithCloser registers a resource closed with the Client.
func WithCloser(closer io.Closer) Option {
	return func(c *clientConfig) { c.closers = append(c.closers, closer) }
}

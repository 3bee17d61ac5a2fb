// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8080
	DefaultLogLevel      = "INFO"
	DefaultWorkers       = 1
	DefaultBaseURL       = "https://adventofcode.com"
	DefaultYear          = 2023
	DefaultSourceTimeout = 30 * time.Second
	DefaultDBFile        = "almanac.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// SourceConfig configures where puzzle inputs are downloaded from.
type SourceConfig struct {
	baseURL      string
	year         int
	timeout      time.Duration
	cacheEnabled bool
}

// NewSourceConfig creates a new SourceConfig with defaults.
func NewSourceConfig() SourceConfig {
	return SourceConfig{
		baseURL:      DefaultBaseURL,
		year:         DefaultYear,
		timeout:      DefaultSourceTimeout,
		cacheEnabled: true,
	}
}

// BaseURL returns the puzzle site root.
func (s SourceConfig) BaseURL() string { return s.baseURL }

// Year returns the event year.
func (s SourceConfig) Year() int { return s.year }

// Timeout returns the download timeout.
func (s SourceConfig) Timeout() time.Duration { return s.timeout }

// CacheEnabled returns whether downloaded inputs are cached in the database.
func (s SourceConfig) CacheEnabled() bool { return s.cacheEnabled }

// InputURL returns the download URL for a day's input.
func (s SourceConfig) InputURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(s.baseURL, "/"), s.year, day)
}

// SourceConfigOption is a functional option for SourceConfig.
type SourceConfigOption func(*SourceConfig)

// WithBaseURL sets the puzzle site root.
func WithBaseURL(url string) SourceConfigOption {
	return func(s *SourceConfig) { s.baseURL = url }
}

// WithYear sets the event year.
func WithYear(year int) SourceConfigOption {
	return func(s *SourceConfig) { s.year = year }
}

// WithSourceTimeout sets the download timeout.
func WithSourceTimeout(d time.Duration) SourceConfigOption {
	return func(s *SourceConfig) { s.timeout = d }
}

// WithCacheEnabled sets whether inputs are cached.
func WithCacheEnabled(enabled bool) SourceConfigOption {
	return func(s *SourceConfig) { s.cacheEnabled = enabled }
}

// NewSourceConfigWithOptions creates a SourceConfig with options.
func NewSourceConfigWithOptions(opts ...SourceConfigOption) SourceConfig {
	s := NewSourceConfig()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host      string
	port      int
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat LogFormat
	token     string
	source    SourceConfig
	workers   int
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".almanac"
	}
	return filepath.Join(home, ".almanac")
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:      DefaultHost,
		port:      DefaultPort,
		dataDir:   dataDir,
		dbURL:     "sqlite:///" + filepath.Join(dataDir, DefaultDBFile),
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
		source:    NewSourceConfig(),
		workers:   DefaultWorkers,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Token returns the puzzle site session token.
func (c AppConfig) Token() string { return c.token }

// Source returns the input source config.
func (c AppConfig) Source() SourceConfig { return c.source }

// Workers returns the number of goroutines used per pipeline stage.
func (c AppConfig) Workers() int { return c.workers }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Keep the default DB inside the data dir.
		if c.dbURL == "" || strings.HasSuffix(c.dbURL, DefaultDBFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithToken sets the session token.
func WithToken(token string) AppConfigOption {
	return func(c *AppConfig) { c.token = token }
}

// WithSourceConfig sets the input source config.
func WithSourceConfig(s SourceConfig) AppConfigOption {
	return func(c *AppConfig) { c.source = s }
}

// WithWorkers sets the per-stage goroutine count.
func WithWorkers(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// The session token is never logged.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.String("base_url", c.source.baseURL),
		slog.Int("year", c.source.year),
		slog.Bool("input_cache", c.source.cacheEnabled),
		slog.Bool("token_set", c.token != ""),
		slog.Int("workers", c.workers),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if IsSQLite(c.dbURL) {
		return c.dbURL
	}
	return "postgres://***@***"
}

// IsSQLite checks if the database URL is for SQLite.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}

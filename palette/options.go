package palette

import (
	"io"
	"log/slog"
)

const (
	DefaultMaxCacheSize = 10000
	DefaultBatchSize    = 1000
)

// Config holds the tunables of an Extractor. The mapstructure tags match the keys
// of the CLI config file.
type Config struct {
	UseCache     bool `mapstructure:"cache"`
	MaxCacheSize int  `mapstructure:"max-cache-size"`
	BatchSize    int  `mapstructure:"batch-size"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		UseCache:     true,
		MaxCacheSize: DefaultMaxCacheSize,
		BatchSize:    DefaultBatchSize,
	}
}

type options struct {
	Config
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*options)

// WithConfig replaces the whole configuration. A non-positive cache size or a
// negative batch size falls back to its default.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.Config = cfg
	}
}

// WithCache enables or disables the Lab conversion cache.
func WithCache(enabled bool) Option {
	return func(o *options) {
		o.UseCache = enabled
	}
}

// WithMaxCacheSize sets how many conversions are cached before the cache is flushed.
func WithMaxCacheSize(n int) Option {
	return func(o *options) {
		o.MaxCacheSize = n
	}
}

// WithBatchSize sets how many colors are ranked between yields to the scheduler.
// Zero ranks everything without yielding.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.BatchSize = n
	}
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(optFns []Option) options {
	o := options{Config: DefaultConfig()}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.MaxCacheSize <= 0 {
		o.MaxCacheSize = DefaultMaxCacheSize
	}
	if o.BatchSize < 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

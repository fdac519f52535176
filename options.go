package gopresetenv

import (
	"context"
	"log/slog"
	"os"

	"github.com/hashicorp/golang-lru/v2"

	"github.com/albertocavalcante/go-presetenv/browserslist"
)

// QueryResolver resolves browser-support queries to "name version" release
// strings. The default implementation is browserslist.Releases.
type QueryResolver func(queries []string) ([]string, error)

// Option configures build behavior.
type Option func(*buildConfig) error

// buildConfig holds all build configuration.
type buildConfig struct {
	session        *Session
	registry       *Registry
	queryResolver  QueryResolver
	runtimeVersion func() (float64, error)
	queryCache     *lru.Cache[string, map[string]float64]

	// logger is the structured logger for debug output. If nil, a handler
	// is chosen at build time: stdout when Options.Debug is set, silent
	// otherwise. Libraries should not write output without consent, so the
	// stdout fallback exists only for the explicit debug flag.
	logger *slog.Logger
}

// defaultQueryCache memoizes query resolution across builds in one process.
// Resolution is a pure function of the query, so sharing is safe.
var defaultQueryCache, _ = lru.New[string, map[string]float64](128)

// WithSession sets the session that scopes one-time debug output. Builds
// sharing a session print diagnostics at most once between them. The default
// is a process-wide session.
func WithSession(s *Session) Option {
	return func(c *buildConfig) error {
		c.session = s
		return nil
	}
}

// WithRegistry sets the plugin registry used to resolve capability names.
// The default registry knows every name in the compatibility tables.
func WithRegistry(r *Registry) Option {
	return func(c *buildConfig) error {
		c.registry = r
		return nil
	}
}

// WithQueryResolver replaces the browser query resolver. Hosts with live
// release data plug it in here; the default resolves against the bundled
// browserslist snapshot.
func WithQueryResolver(fn QueryResolver) Option {
	return func(c *buildConfig) error {
		c.queryResolver = fn
		return nil
	}
}

// WithRuntimeVersion pins the version used for node: true / "current"
// targets instead of detecting the running runtime.
func WithRuntimeVersion(v float64) Option {
	return func(c *buildConfig) error {
		c.runtimeVersion = func() (float64, error) { return v, nil }
		return nil
	}
}

// WithQueryCacheSize replaces the shared query-resolution cache with a
// private one of the given size. A size of zero disables caching.
func WithQueryCacheSize(size int) Option {
	return func(c *buildConfig) error {
		if size <= 0 {
			c.queryCache = nil
			return nil
		}
		cache, err := lru.New[string, map[string]float64](size)
		if err != nil {
			return err
		}
		c.queryCache = cache
		return nil
	}
}

// WithLogger sets a structured logger for debug diagnostics.
//
// The library uses log/slog, so any backend can be plugged in via handlers.
func WithLogger(l *slog.Logger) Option {
	return func(c *buildConfig) error {
		c.logger = l
		return nil
	}
}

// log returns the configured logger, or a fallback chosen by the debug flag:
// stdout text output when debugging, silence otherwise.
func (c *buildConfig) log(debug bool) *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	if debug {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records, used when
// no logger is configured to avoid nil checks throughout the code.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newBuildConfig creates a build configuration by applying the given options
// over the defaults.
func newBuildConfig(opts ...Option) (*buildConfig, error) {
	c := &buildConfig{
		session:        defaultSession,
		registry:       DefaultRegistry(),
		queryResolver:  func(queries []string) ([]string, error) { return browserslist.Releases(queries...) },
		runtimeVersion: detectRuntimeVersion,
		queryCache:     defaultQueryCache,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

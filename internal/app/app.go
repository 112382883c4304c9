// ABOUTME: Component wiring shared by the API server and the searchctl tool
// ABOUTME: Builds storage, lexicon, hint provider, cache and metrics from configuration

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cultural-search-api/core/interfaces"
	"cultural-search-api/core/lexicon"
	"cultural-search-api/core/search"
	"cultural-search-api/infrastructure/cache/memory"
	"cultural-search-api/infrastructure/cache/redis"
	sqlitecache "cultural-search-api/infrastructure/cache/sqlite"
	"cultural-search-api/infrastructure/hint"
	"cultural-search-api/infrastructure/hint/llm"
	"cultural-search-api/infrastructure/hint/python"
	"cultural-search-api/infrastructure/http/retryable"
	logruslogger "cultural-search-api/infrastructure/logger/logrus"
	"cultural-search-api/infrastructure/metrics"
	"cultural-search-api/infrastructure/storage/sqlite"
	"cultural-search-api/pkg/config"
	"cultural-search-api/pkg/featureflags"
)

// App holds the wired components
type App struct {
	Config  *config.Config
	Logger  interfaces.Logger
	Flags   featureflags.Manager
	DB      *sqlite.DB
	Search  *search.SearchService
	Lexicon *lexicon.Lexicon

	// Metrics is nil when the metrics flag is off
	Metrics *metrics.Prometheus

	closers []io.Closer
}

// NewLogger builds the application logger from configuration
func NewLogger(cfg config.LogConfig) *logruslogger.Logger {
	return logruslogger.New(logruslogger.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   cfg.File,
	})
}

// New opens the database, migrates it and wires the search service
func New(ctx context.Context, cfg *config.Config, logger interfaces.Logger, flags featureflags.Manager) (*App, error) {
	db, err := sqlite.Open(cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Flags:   flags,
		DB:      db,
		closers: []io.Closer{db},
	}

	if err := db.Migrate(ctx, cfg.Database.Fulltext); err != nil {
		a.Close()
		return nil, err
	}

	hints, err := a.newHintProvider(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	var m interfaces.Metrics = metrics.Noop{}
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		a.Metrics = metrics.NewPrometheus()
		m = a.Metrics
	}

	a.Lexicon = lexicon.Load(cfg.Lexicon.StopwordsFile, cfg.Lexicon.SynonymsFile, logger)

	deps := interfaces.Dependencies{
		Sources: db.Sources(cfg.Search.ResourceLimit),
		Probe:   db,
		Hints:   hints,
		Logger:  logger,
		Metrics: m,
	}
	a.Search = search.NewSearchService(deps, a.Lexicon, search.Config{
		FullTextPageSize: cfg.Search.FullTextPageSize,
		AIPageSize:       cfg.Search.AIPageSize,
		HintTimeout:      cfg.Hint.Timeout,
		HintProvider:     cfg.Hint.Provider,
		HistorySize:      cfg.Search.HistorySize,
	})

	return a, nil
}

// newHintProvider returns nil when AI hints are disabled
func (a *App) newHintProvider(ctx context.Context) (interfaces.HintProvider, error) {
	cfg := a.Config
	if cfg.Hint.Provider == config.HintProviderNone || !a.Flags.IsEnabled(ctx, featureflags.AIHints) {
		a.Logger.Info("AI hints disabled", nil)
		return nil, nil
	}

	var provider interfaces.HintProvider
	switch cfg.Hint.Provider {
	case config.HintProviderPython:
		client := retryable.NewClient(retryable.Options{
			Timeout: cfg.Hint.Timeout,
			Retries: cfg.Hint.Retries,
		})
		provider = python.NewProvider(client, cfg.Hint.AIGCServiceURL)
	case config.HintProviderLLM:
		p, err := llm.NewProvider(llm.Options{
			BaseURL: cfg.Hint.LLMBaseURL,
			Token:   cfg.Hint.LLMToken,
			Model:   cfg.Hint.LLMModel,
		})
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		return nil, fmt.Errorf("unknown hint provider %q", cfg.Hint.Provider)
	}

	a.Logger.Info("AI hints enabled", map[string]interface{}{
		"provider": cfg.Hint.Provider,
		"timeout":  cfg.Hint.Timeout.String(),
	})

	if !a.Flags.IsEnabled(ctx, featureflags.HintCache) {
		return provider, nil
	}
	cache, err := a.newCache()
	if err != nil {
		return nil, err
	}
	return hint.NewCachedProvider(provider, cache, cfg.Hint.CacheTTL, a.Logger), nil
}

// newCache builds the hint cache. An unreachable Redis falls back to memory.
func (a *App) newCache() (interfaces.Cache, error) {
	cfg := a.Config.Cache
	switch cfg.Type {
	case config.CacheTypeRedis:
		c, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			a.Logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		a.closers = append(a.closers, c)
		a.Logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
		return c, nil
	case config.CacheTypeSQLite:
		c, err := sqlitecache.NewSQLiteCache(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, c)
		a.Logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLitePath})
		return c, nil
	}

	a.Logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Memory.CleanupInterval), nil
}

// Close releases caches and the database in reverse order of creation
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package: data sources, hint providers, caches, HTTP,
// logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: The three data sources over SQLite with optional FTS4 indexes
// - hint/python: Keyword hints from the Python AIGC service over HTTP
// - hint/llm: Keyword hints from an OpenAI compatible model via langchaingo
// - hint: Cache decorator for any hint provider
// - cache/memory, cache/redis, cache/sqlite: Hint cache backends
// - http/retryable: HTTP client with retries and backoff
// - logger/logrus: Structured logger with optional rotating file output
// - metrics: Prometheus collectors for searches and failures
//
// # Storage
//
//	db, err := sqlite.Open("cultural.db", logger)
//	err = db.Migrate(ctx, true)
//	sources := db.Sources(100)
//
// # Hint Providers
//
//	client := retryable.NewClient(retryable.Options{Timeout: 3 * time.Second})
//	provider := python.NewProvider(client, "http://localhost:7200")
//	cached := hint.NewCachedProvider(provider, memory.NewMemoryCache(time.Minute), time.Hour, logger)
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Search completed", map[string]interface{}{
//	    "query": "春节",
//	    "total": 12,
//	})
package infrastructure

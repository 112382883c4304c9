// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, database, search, hints, cache and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Hint provider names
const (
	HintProviderPython = "python"
	HintProviderLLM    = "llm"
	HintProviderNone   = "none"
)

// Cache backend names
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
	CacheTypeSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Database points at the SQLite database holding the data sources
	Database DatabaseConfig

	// Lexicon names the dictionary files
	Lexicon LexiconConfig

	// Search holds paging and history settings
	Search SearchConfig

	// Hint configures the AI keyword hint provider
	Hint HintConfig

	// Cache contains hint cache configuration
	Cache CacheConfig

	// RateLimit configures per-client request limiting
	RateLimit RateLimitConfig

	// Log configures the application logger
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// CORSOrigins lists allowed origins; "*" allows any
	CORSOrigins []string
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	// Path is the SQLite database file
	Path string

	// Fulltext creates the FTS4 indexes during migration
	Fulltext bool
}

// LexiconConfig holds dictionary file locations. Missing files fall back
// to the built-in dictionaries.
type LexiconConfig struct {
	StopwordsFile string
	SynonymsFile  string
}

// SearchConfig holds search paging and history settings
type SearchConfig struct {
	FullTextPageSize int
	AIPageSize       int

	// ResourceLimit caps rows returned by the cultural resources source
	ResourceLimit int

	HistorySize int
}

// HintConfig holds hint provider settings
type HintConfig struct {
	// Provider is python, llm or none
	Provider string

	// AIGCServiceURL is the base URL of the Python AIGC service
	AIGCServiceURL string

	Timeout time.Duration
	Retries int

	// CacheTTL is how long hints are cached; 0 keeps them until evicted
	CacheTTL time.Duration

	LLMBaseURL string
	LLMModel   string
	LLMToken   string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the cache database file for the sqlite backend
	SQLitePath string

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key written by this application
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// RateLimitConfig holds the token bucket settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int

	// TrustedProxies lists proxy IPs or CIDRs allowed to set X-Forwarded-For
	TrustedProxies []string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string

	// File enables rotated file output in addition to stdout
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8080"),
			ReadTimeout:     getEnvAsSecondsOrDefault("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsSecondsOrDefault("WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsSecondsOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     getEnvAsListOrDefault("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Path:     getEnvOrDefault("DATABASE_PATH", "cultural.db"),
			Fulltext: getEnvAsBoolOrDefault("DATABASE_FULLTEXT", true),
		},
		Lexicon: LexiconConfig{
			StopwordsFile: getEnvOrDefault("STOPWORDS_FILE", "stopwords.txt"),
			SynonymsFile:  getEnvOrDefault("SYNONYMS_FILE", "synonyms.txt"),
		},
		Search: SearchConfig{
			FullTextPageSize: getEnvAsIntOrDefault("FULLTEXT_PAGE_SIZE", 100),
			AIPageSize:       getEnvAsIntOrDefault("AI_PAGE_SIZE", 8),
			ResourceLimit:    getEnvAsIntOrDefault("RESOURCE_LIMIT", 100),
			HistorySize:      getEnvAsIntOrDefault("HISTORY_SIZE", 100),
		},
		Hint: HintConfig{
			Provider:       strings.ToLower(getEnvOrDefault("HINT_PROVIDER", HintProviderPython)),
			AIGCServiceURL: getEnvOrDefault("AIGC_SERVICE_URL", "http://localhost:7200"),
			Timeout:        time.Duration(getEnvAsIntOrDefault("HINT_TIMEOUT_MS", 3000)) * time.Millisecond,
			Retries:        getEnvAsIntOrDefault("HINT_RETRIES", 0),
			CacheTTL:       getEnvAsSecondsOrDefault("HINT_CACHE_TTL", time.Hour),
			LLMBaseURL:     getEnvOrDefault("LLM_BASE_URL", ""),
			LLMModel:       getEnvOrDefault("LLM_MODEL", ""),
			LLMToken:       getEnvOrDefault("LLM_TOKEN", ""),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheTypeMemory)),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "cultural-search:"),
			},
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsSecondsOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			Burst:             getEnvAsIntOrDefault("RATE_BURST", 20),
			TrustedProxies:    getEnvAsListOrDefault("RATE_LIMIT_TRUSTED_PROXIES", nil),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsSecondsOrDefault reads a whole number of seconds
func getEnvAsSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty")
	}

	if c.Search.FullTextPageSize < 1 || c.Search.AIPageSize < 1 {
		return errors.New("page sizes must be at least 1")
	}

	if c.Search.ResourceLimit < 1 {
		return errors.New("resource limit must be at least 1")
	}

	if err := c.Hint.validate(); err != nil {
		return err
	}

	switch c.Cache.Type {
	case CacheTypeMemory:
	case CacheTypeRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheTypeSQLite:
		if c.Cache.SQLitePath == "" {
			return errors.New("sqlite cache path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate limit must be positive with a burst of at least 1")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

func (h HintConfig) validate() error {
	switch h.Provider {
	case HintProviderNone:
		return nil
	case HintProviderPython:
		if h.AIGCServiceURL == "" {
			return errors.New("AIGC service URL cannot be empty when using the python hint provider")
		}
	case HintProviderLLM:
		if h.LLMModel == "" {
			return errors.New("LLM model cannot be empty when using the llm hint provider")
		}
	default:
		return fmt.Errorf("unknown hint provider %q", h.Provider)
	}

	if h.Timeout <= 0 {
		return errors.New("hint timeout must be positive")
	}
	if h.Retries < 0 {
		return errors.New("hint retries cannot be negative")
	}
	return nil
}

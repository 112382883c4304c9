// ABOUTME: Feature toggles for optional search capabilities
// ABOUTME: Environment-backed flags with per-flag defaults plus a static manager for tests

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// AIHints lets the AI search path consult the hint provider
	AIHints FeatureFlag = "ai_hints"

	// HintCache caches hint provider answers
	HintCache FeatureFlag = "hint_cache"

	// MetricsEnabled enables the metrics endpoint
	MetricsEnabled FeatureFlag = "metrics"

	// RateLimitEnabled enables rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit"
)

// Defaults are the flag states used when no environment variable is set
var Defaults = map[FeatureFlag]bool{
	AIHints:          true,
	HintCache:        true,
	MetricsEnabled:   true,
	RateLimitEnabled: false,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled. An unset variable yields
// the flag's default.
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	value, ok := os.LookupEnv(envKey)
	if !ok || value == "" {
		return Defaults[flag]
	}

	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "enabled"
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(Defaults))
	for flag := range Defaults {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticManager{
		flags: copied,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool)
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}

type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext retrieves the feature flag manager from context
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	// Return a default manager that disables all features
	return NewStaticManager(nil)
}

// IsEnabled is a convenience function to check if a feature is enabled
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}

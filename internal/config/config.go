// Package config loads cache settings from defaults, an optional config file and BOUNDCACHE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/krisalay/bounded-cache/eviction"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override, e.g. BOUNDCACHE_CACHE_CAPACITY.
const EnvPrefix = "BOUNDCACHE"

// DefaultCapacity is the number of entries a bounded cache holds when nothing else is configured.
const DefaultCapacity = 4

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Cache      CacheConfig      `mapstructure:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Pagination PaginationConfig `mapstructure:"pagination"`
}

// CacheConfig selects the eviction policy and capacity.
type CacheConfig struct {
	Capacity int    `mapstructure:"capacity"`
	Policy   string `mapstructure:"policy"`
}

// LoggingConfig mirrors logging.Config in config-file form.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PaginationConfig configures the page cache in front of a CSV dataset.
type PaginationConfig struct {
	DataFile      string `mapstructure:"data_file"`
	PageSize      int    `mapstructure:"page_size"`
	CacheCapacity int    `mapstructure:"cache_capacity"`
}

// PolicyType parses Cache.Policy. Validate has already checked it for a loaded Config.
func (c CacheConfig) PolicyType() eviction.PolicyType {
	t, err := eviction.ParsePolicyType(c.Policy)
	if err != nil {
		return eviction.None
	}
	return t
}

// Manager handles configuration loading.
type Manager struct {
	viper *viper.Viper
}

// NewManager creates a manager with defaults and environment bindings in place.
func NewManager() *Manager {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()
	return m
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("cache.capacity", DefaultCapacity)
	m.viper.SetDefault("cache.policy", string(eviction.FIFO))
	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.format", "console")
	m.viper.SetDefault("pagination.data_file", "Popular_Baby_Names.csv")
	m.viper.SetDefault("pagination.page_size", 10)
	m.viper.SetDefault("pagination.cache_capacity", 16)
}

// Viper exposes the underlying instance so command flags can be bound to keys.
func (m *Manager) Viper() *viper.Viper {
	return m.viper
}

// Load reads the config file at path (if path is not empty), applies env overrides and validates the result.
// The file format follows the extension: yaml, toml or json.
func (m *Manager) Load(path string) (*Config, error) {
	if path != "" {
		m.viper.SetConfigFile(path)
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := m.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values a cache can not be built without.
func Validate(cfg *Config) error {
	policy, err := eviction.ParsePolicyType(cfg.Cache.Policy)
	if err != nil {
		return fmt.Errorf("%w: cache.policy: %w", ErrInvalidConfig, err)
	}
	if policy.Bounded() && cfg.Cache.Capacity < 1 {
		return fmt.Errorf("%w: cache.capacity must be > 0 for policy %s, got %d", ErrInvalidConfig, policy, cfg.Cache.Capacity)
	}
	if cfg.Pagination.PageSize < 1 {
		return fmt.Errorf("%w: pagination.page_size must be > 0, got %d", ErrInvalidConfig, cfg.Pagination.PageSize)
	}
	if cfg.Pagination.CacheCapacity < 1 {
		return fmt.Errorf("%w: pagination.cache_capacity must be > 0, got %d", ErrInvalidConfig, cfg.Pagination.CacheCapacity)
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, cfg.Logging.Format)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// Load reads configuration from the optional file at configPath, layered
// under TREND_-prefixed environment variables and built-in defaults. An
// empty configPath loads defaults and environment only.
func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	m.viper.SetEnvPrefix("TREND")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	if configPath != "" {
		m.viper.SetConfigFile(configPath)
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setDefaults() {
	m.viper.SetDefault("server.host", "0.0.0.0")
	m.viper.SetDefault("server.port", 8080)

	m.viper.SetDefault("scoring.batch_size", 5)
	m.viper.SetDefault("scoring.batch_delay_ms", 100)
	m.viper.SetDefault("scoring.cache_ttl_minutes", 360)
	m.viper.SetDefault("scoring.cache_size", 1000)

	m.viper.SetDefault("suggest.endpoint", "")
	m.viper.SetDefault("suggest.timeout_ms", 3000)

	m.viper.SetDefault("logger.level", "info")
	m.viper.SetDefault("logger.format", "json")
	m.viper.SetDefault("logger.output", "stdout")
}

func (m *manager) validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Scoring.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}

	if config.Scoring.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive")
	}

	if config.Scoring.CacheTTLMin <= 0 {
		return fmt.Errorf("cache_ttl_minutes must be positive")
	}

	if config.Suggest.TimeoutMs <= 0 {
		return fmt.Errorf("suggest timeout_ms must be positive")
	}

	return nil
}

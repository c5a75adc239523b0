package config

import "time"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Suggest SuggestConfig `mapstructure:"suggest"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type ScoringConfig struct {
	BatchSize    int `mapstructure:"batch_size"`
	BatchDelayMs int `mapstructure:"batch_delay_ms"`
	CacheTTLMin  int `mapstructure:"cache_ttl_minutes"`
	CacheSize    int `mapstructure:"cache_size"`
}

type SuggestConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

// BatchDelay returns the inter-batch throttle as a duration.
func (c ScoringConfig) BatchDelay() time.Duration {
	return time.Duration(c.BatchDelayMs) * time.Millisecond
}

// CacheTTL returns the cache time-to-live as a duration.
func (c ScoringConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMin) * time.Minute
}

// Timeout returns the suggestion fetch timeout as a duration.
func (c SuggestConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

type Manager interface {
	Load(configPath string) (*Config, error)
	GetConfig() *Config
}

package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Generation   GenerationConfig   `mapstructure:"generation"`
	Speech       SpeechConfig       `mapstructure:"speech"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Processing   ProcessingConfig   `mapstructure:"processing"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// GenerationConfig contains script generation settings.
// EpisodeCount and ScriptCharCap carry the product defaults (5 episodes,
// capped script length) and should not be changed casually: the lineup
// prompt and the sequencing state machine both depend on EpisodeCount.
type GenerationConfig struct {
	OpenAIAPIKey    string        `mapstructure:"openai_api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	EpisodeCount    int           `mapstructure:"episode_count"`
	ScriptCharCap   int           `mapstructure:"script_char_cap"`
	DefaultLanguage string        `mapstructure:"default_language"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// SpeechConfig contains speech synthesis settings
type SpeechConfig struct {
	Model   string        `mapstructure:"model"`
	Voice   string        `mapstructure:"voice"`
	Format  string        `mapstructure:"format"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig contains artifact storage settings
type StorageConfig struct {
	EpisodesDir string `mapstructure:"episodes_dir"`
}

// ProcessingConfig contains job queue and worker settings
type ProcessingConfig struct {
	Workers          int           `mapstructure:"workers"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	JobRetentionDays int           `mapstructure:"job_retention_days"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

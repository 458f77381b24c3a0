package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/fillerbot/internal/model"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the bot's runtime configuration
type Config struct {
	LogLevel         string        `yaml:"log-level" env:"FILLER_LOG_LEVEL" env-default:"info"`
	StorageType      string        `yaml:"storage" env:"FILLER_STORAGE" env-default:"memory"`
	Redis            Redis         `yaml:"redis"`
	TurnTimeout      time.Duration `yaml:"turn-timeout" env:"FILLER_TURN_TIMEOUT" env-default:"0s"`
	PieceOrientation string        `yaml:"piece-orientation" env:"FILLER_PIECE_ORIENTATION" env-default:"bottom-up"`
}

// Redis holds the decision history store settings
type Redis struct {
	URL          string        `yaml:"url" env:"FILLER_REDIS_URL" env-default:"redis://localhost:6379"`
	PoolSize     int           `yaml:"pool-size" env:"FILLER_REDIS_POOL_SIZE" env-default:"4"`
	MinIdleConns int           `yaml:"min-idle-conns" env:"FILLER_REDIS_MIN_IDLE_CONNS" env-default:"1"`
	RecordTTL    time.Duration `yaml:"record-ttl" env:"FILLER_REDIS_RECORD_TTL" env-default:"168h"`
}

// Load reads configuration from path when given, otherwise from the
// environment alone. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return cfg, nil
}

// Validate checks values cleanenv cannot
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.StorageType {
	case StorageTypeMemory, StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage type %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	if c.TurnTimeout < 0 {
		return fmt.Errorf("turn timeout must not be negative, got %s", c.TurnTimeout)
	}
	if _, err := c.Orientation(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to a slog level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Orientation converts PieceOrientation to its model value
func (c *Config) Orientation() (model.PieceOrientation, error) {
	return model.ParsePieceOrientation(c.PieceOrientation)
}

package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/fillerbot/internal/config"
)

// Flags holds the global command line settings. Values only override the
// loaded configuration when the flag was set explicitly.
type Flags struct {
	ConfigPath       string
	LogLevel         string
	Storage          string
	RedisURL         string
	TurnTimeout      time.Duration
	PieceOrientation string
	Output           string
}

// DefaultFlags returns Flags with default values
func DefaultFlags() *Flags {
	return &Flags{
		Output: "text",
	}
}

// Load reads the configuration file or environment, then applies any flags
// the user set on cmd
func (f *Flags) Load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if changed("storage") {
		cfg.StorageType = f.Storage
	}
	if changed("redis-url") {
		cfg.Redis.URL = f.RedisURL
	}
	if changed("turn-timeout") {
		cfg.TurnTimeout = f.TurnTimeout
	}
	if changed("piece-orientation") {
		cfg.PieceOrientation = f.PieceOrientation
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes JSON records to w, which must not be the protocol stream
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}

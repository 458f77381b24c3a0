package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/fillerbot/internal/config"
	"github.com/mcoot/fillerbot/internal/factory"
)

var flags *Flags

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	flags = DefaultFlags()

	rootCmd := &cobra.Command{
		Use:   "filler",
		Short: "Filler bot that answers a game server over stdin and stdout",
		Long: `filler plays one game against a filler server.

Run without a subcommand it reads the player line, then answers every turn
with "row col", or "0 0" once no legal placement remains. Logs go to stderr.`,
		Args:         cobra.NoArgs,
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "YAML config file (env vars override it)")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error (env: FILLER_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flags.Storage, "storage", "memory", "Decision history storage: memory, redis (env: FILLER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&flags.RedisURL, "redis-url", "", "Redis URL for redis storage (env: FILLER_REDIS_URL)")
	rootCmd.PersistentFlags().DurationVar(&flags.TurnTimeout, "turn-timeout", 0, "Scoring deadline per turn, 0 for none (env: FILLER_TURN_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&flags.PieceOrientation, "piece-orientation", "bottom-up", "Piece row order: bottom-up, top-down (env: FILLER_PIECE_ORIENTATION)")
	rootCmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output format for explain and history: text, json")

	// Add subcommands
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// commandEnv is the wired application for one command invocation
type commandEnv struct {
	App    *factory.App
	Config *config.Config
	Logger *slog.Logger
}

// newEnv loads configuration and wires the application for one command
func newEnv(cmd *cobra.Command) (*commandEnv, error) {
	cfg, err := flags.Load(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	factoryCfg, err := factory.FromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return nil, err
	}
	return &commandEnv{App: app, Config: cfg, Logger: logger}, nil
}

func (e *commandEnv) Close() {
	if err := e.App.Close(); err != nil {
		e.Logger.Warn("failed to close application", slog.String("error", err.Error()))
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()
	logger := env.Logger

	result, err := env.App.GameController.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		logger.Error("session failed", slog.String("error", err.Error()))
		return err
	}

	attrs := []any{
		slog.Int("turns", result.Turns),
		slog.String("outcome", string(result.Outcome)),
	}
	if result.Session != nil {
		attrs = append(attrs, slog.String("session_id", string(result.Session.ID)))
	}
	logger.Info("session finished", attrs...)
	return nil
}

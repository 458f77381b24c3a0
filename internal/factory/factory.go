package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/fillerbot/internal/config"
	"github.com/mcoot/fillerbot/internal/dependencies/clock"
	"github.com/mcoot/fillerbot/internal/dependencies/random"
	"github.com/mcoot/fillerbot/internal/services/bot"
	"github.com/mcoot/fillerbot/internal/services/game"
	"github.com/mcoot/fillerbot/internal/services/scoring"
	"github.com/mcoot/fillerbot/internal/storage"
	"github.com/mcoot/fillerbot/internal/storage/memory"
	redisstorage "github.com/mcoot/fillerbot/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BotService     *bot.Service
	GameController *game.Controller

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Game holds the turn loop settings
	Game game.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg.Game, logger)
	app.closers = closers
	return app, nil
}

// FromConfig builds the factory configuration from loaded runtime config
func FromConfig(cfg *config.Config, logger *slog.Logger) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	orientation, err := cfg.Orientation()
	if err != nil {
		return Config{}, err
	}

	out := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		Game: game.Config{
			TurnTimeout: cfg.TurnTimeout,
			Orientation: orientation,
		},
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Redis.URL
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		redisCfg.RecordTTL = cfg.Redis.RecordTTL
		out.RedisConfig = &redisCfg
	}
	return out, nil
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, gameCfg game.Config, logger *slog.Logger) *App {
	botService := bot.NewService(scoring.DefaultStrategies(), logger)
	gameController := game.NewController(store, botService, clk, rnd, gameCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BotService:     botService,
		GameController: gameController,
	}
}

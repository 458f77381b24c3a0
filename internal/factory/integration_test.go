package factory

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fillerbot/internal/config"
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/game"
	redisstorage "github.com/mcoot/fillerbot/internal/storage/redis"
	"github.com/mcoot/fillerbot/internal/testutil"
)

// transcript is a p1 session: O expands for two turns, then has no move
const transcript = `$$$ exec p1 : [fillerbot]
Plateau 4 6:
    012345
000 ......
001 .O....
002 ......
003 ....X.
Piece 2 2:
*.
**
Plateau 4 6:
    012345
000 ......
001 .Oo...
002 .oo...
003 ...xX.
Piece 1 1:
*
Plateau 2 2:
    01
000 XX
001 XX
Piece 1 1:
*
`

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) play(app *TestApp) (*game.Result, string) {
	var out bytes.Buffer
	result, err := app.GameController.Run(s.ctx, strings.NewReader(transcript), &out)
	s.Require().NoError(err)
	return result, out.String()
}

// Test: complete session from player line to conceding
func (s *IntegrationSuite) TestCompleteSession() {
	s.app.MockRandom.QueueString("SESSION1")

	result, out := s.play(s.app)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 3)
	s.Equal("0 0", lines[2])
	s.Equal(game.OutcomeNoLegalMove, result.Outcome)
	s.Equal(3, result.Turns)

	records, err := s.app.Storage.GetTurnsForSession(s.ctx, "SESSION1")
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.True(records[0].Found)
	s.True(records[1].Found)
	s.False(records[2].Found)
}

// Test: the same transcript against the Redis backend yields the same moves
func (s *IntegrationSuite) TestRedisBackendMatchesMemory() {
	s.app.MockRandom.QueueString("SESSION1")
	_, memoryOut := s.play(s.app)

	mini := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	store := redisstorage.NewWithClient(client, redisstorage.DefaultConfig())
	defer func() { _ = store.Close() }()

	redisApp := NewTestAppWithStorage(store)
	redisApp.MockRandom.QueueString("SESSION2")
	_, redisOut := s.play(redisApp)

	s.Equal(memoryOut, redisOut)

	records, err := store.GetTurnsForSession(s.ctx, "SESSION2")
	s.Require().NoError(err)
	s.Len(records, 3)
	s.True(mini.Exists("fillerbot:session:SESSION2"))
}

func (s *IntegrationSuite) TestNewWithMemoryStorage() {
	app, err := New(Config{Logger: testutil.NopLogger()})
	s.Require().NoError(err)
	defer func() { s.NoError(app.Close()) }()

	s.NotNil(app.BotService)
	s.NotNil(app.GameController)
}

func (s *IntegrationSuite) TestNewWithRedisStorage() {
	mini := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{StorageType: config.StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	s.NoError(app.Close())
}

func (s *IntegrationSuite) TestNewRejectsBadStorage() {
	_, err := New(Config{StorageType: config.StorageTypeRedis})
	s.Error(err)

	_, err = New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFromConfig() {
	cfg := &config.Config{
		LogLevel:         "info",
		StorageType:      config.StorageTypeRedis,
		TurnTimeout:      200 * time.Millisecond,
		PieceOrientation: "top-down",
		Redis: config.Redis{
			URL:          "redis://cache:6379",
			PoolSize:     2,
			MinIdleConns: 1,
			RecordTTL:    time.Hour,
		},
	}

	out, err := FromConfig(cfg, testutil.NopLogger())
	s.Require().NoError(err)

	s.Equal(config.StorageTypeRedis, out.StorageType)
	s.Equal(200*time.Millisecond, out.Game.TurnTimeout)
	s.Equal(model.OrientationTopDown, out.Game.Orientation)
	s.Require().NotNil(out.RedisConfig)
	s.Equal("redis://cache:6379", out.RedisConfig.URL)
	s.Equal(time.Hour, out.RedisConfig.RecordTTL)

	cfg.PieceOrientation = "diagonal"
	_, err = FromConfig(cfg, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidOrientation)
}

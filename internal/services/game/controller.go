package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/mcoot/fillerbot/internal/dependencies/clock"
	"github.com/mcoot/fillerbot/internal/dependencies/random"
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/protocol"
	"github.com/mcoot/fillerbot/internal/services/bot"
	"github.com/mcoot/fillerbot/internal/storage"
)

// SessionIDLength is the length of generated session IDs
const SessionIDLength = 16

// Outcome is how a session ended
type Outcome string

const (
	OutcomeInputClosed Outcome = "input_closed"  // server closed the input stream
	OutcomeNoLegalMove Outcome = "no_legal_move" // bot conceded with "0 0"
)

// Config holds the per-session settings of the turn loop
type Config struct {
	// TurnTimeout bounds each scoring pass. Zero means unbounded.
	TurnTimeout time.Duration
	// Orientation is how piece rows are mapped to row offsets
	Orientation model.PieceOrientation
}

// Result summarizes a finished session
type Result struct {
	Session *model.Session // nil when input ended before the player line
	Turns   int            // moves emitted, including a final "0 0"
	Outcome Outcome
}

// Controller runs the read, decide, write loop for one game
type Controller struct {
	storage    storage.Storage
	botService *bot.Service
	clock      clock.Clock
	random     random.Random
	cfg        Config
	logger     *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	store storage.Storage,
	botService *bot.Service,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    store,
		botService: botService,
		clock:      clk,
		random:     rnd,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "game-controller")),
	}
}

// Run plays a whole session: it reads the player line once, then answers
// turns until the input ends or no legal move remains. Malformed input is
// returned as an error; running out of input is not.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) (*Result, error) {
	reader := protocol.NewReader(in, c.cfg.Orientation)
	writer := protocol.NewWriter(out)
	result := &Result{Outcome: OutcomeInputClosed}

	player, err := reader.ReadPlayer()
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.logger.Info("input closed before player line")
			return result, nil
		}
		return result, fmt.Errorf("reading player line: %w", err)
	}

	session, err := c.StartSession(ctx, player)
	if err != nil {
		return result, err
	}
	result.Session = session
	logger := c.logger.With(slog.String("session_id", string(session.ID)))

	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		grid, piece, err := reader.ReadTurn()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("input closed", slog.Int("turns", result.Turns))
				return result, nil
			}
			logger.Error("malformed turn input",
				slog.Int("turn", number),
				slog.String("error", err.Error()),
			)
			return result, fmt.Errorf("turn %d: %w", number, err)
		}

		turn := &model.Turn{
			Number: number,
			Grid:   grid,
			Piece:  piece,
			Player: session.Player,
			Enemy:  session.Enemy,
		}
		decision, err := c.PlayTurn(ctx, session, turn, writer)
		if err != nil {
			return result, err
		}
		result.Turns++

		if !decision.Found {
			logger.Info("no legal move", slog.Int("turn", number))
			result.Outcome = OutcomeNoLegalMove
			return result, nil
		}
	}
}

// StartSession fixes the bot's identity for the game and records it
func (c *Controller) StartSession(ctx context.Context, player model.Owner) (*model.Session, error) {
	id := model.SessionID(c.random.String(SessionIDLength, random.SessionIDAlphabet))
	session := model.NewSession(id, player, c.clock.Now())

	if err := c.storage.SaveSession(ctx, &session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(id)),
		slog.String("player", session.Player.String()),
		slog.String("enemy", session.Enemy.String()),
	)
	return &session, nil
}

// PlayTurn decides one turn, writes the move and records the decision.
// A failure to record is logged but does not fail the turn, since the move
// has already been sent.
func (c *Controller) PlayTurn(ctx context.Context, session *model.Session, turn *model.Turn, writer *protocol.Writer) (bot.Decision, error) {
	start := c.clock.Now()

	turnCtx := ctx
	if c.cfg.TurnTimeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(ctx, c.cfg.TurnTimeout)
		defer cancel()
	}

	decision, err := c.botService.Decide(turnCtx, turn)
	if err != nil {
		return decision, fmt.Errorf("turn %d: %w", turn.Number, err)
	}

	if decision.Found {
		err = writer.WriteMove(decision.Position)
	} else {
		err = writer.WriteNoMove()
	}
	if err != nil {
		return decision, fmt.Errorf("writing move for turn %d: %w", turn.Number, err)
	}

	elapsed := c.clock.Since(start)
	record := &model.TurnRecord{
		SessionID:  session.ID,
		Turn:       turn.Number,
		Strategy:   decision.Strategy,
		Candidates: decision.Candidates,
		Found:      decision.Found,
		Position:   decision.Position,
		Score:      model.Score(decision.Score),
		Truncated:  decision.Truncated,
		Duration:   elapsed,
		DecidedAt:  c.clock.Now(),
	}
	if err := c.storage.AppendTurn(ctx, record); err != nil {
		c.logger.Warn("failed to record turn",
			slog.String("session_id", string(session.ID)),
			slog.Int("turn", turn.Number),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("turn played",
		slog.String("session_id", string(session.ID)),
		slog.Int("turn", turn.Number),
		slog.String("strategy", string(decision.Strategy)),
		slog.Int("candidates", decision.Candidates),
		slog.Bool("found", decision.Found),
		slog.Int("row", decision.Position.Y),
		slog.Int("col", decision.Position.X),
		slog.String("score", formatScore(decision.Score)),
		slog.Bool("truncated", decision.Truncated),
		slog.Duration("elapsed", elapsed),
	)

	return decision, nil
}

// formatScore keeps infinite scores loggable as JSON
func formatScore(score float64) string {
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return fmt.Sprint(score)
	}
	return fmt.Sprintf("%.4f", score)
}

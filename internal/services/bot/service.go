package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/board"
	"github.com/mcoot/fillerbot/internal/services/scoring"
)

// Decision is the outcome of searching one turn
type Decision struct {
	Strategy   model.Strategy
	Found      bool // false means no legal move exists
	Position   model.Position
	Score      float64
	Candidates int  // legal anchors enumerated
	Scored     int  // anchors actually scored before returning
	Truncated  bool // ctx ended before every candidate was scored
}

// Candidate is a legal anchor with its score
type Candidate struct {
	Position model.Position
	Score    float64
}

// Service chooses placements for the controlled player
type Service struct {
	strategies map[model.Strategy]scoring.Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[model.Strategy]scoring.Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// HasStrategy reports whether a strategy tag is registered
func (s *Service) HasStrategy(strategy model.Strategy) bool {
	_, ok := s.strategies[strategy]
	return ok
}

// Decide selects the turn's strategy from the board and finds the best move
func (s *Service) Decide(ctx context.Context, turn *model.Turn) (Decision, error) {
	strategy := SelectStrategy(turn.Grid, turn.Player, turn.Enemy)
	return s.BestPosition(ctx, turn, strategy)
}

// BestPosition scores every legal anchor with one strategy and keeps the
// first anchor reaching the maximum. Later anchors must score strictly
// higher to replace it.
//
// ctx is checked between candidates, never before the first, so a turn
// with any legal anchor always yields a move. When ctx ends early the best
// anchor scored so far is returned with Truncated set.
func (s *Service) BestPosition(ctx context.Context, turn *model.Turn, strategy model.Strategy) (Decision, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategy)
	}

	candidates := board.AllPositions(turn.Grid, turn.Piece, turn.Player)
	decision := Decision{
		Strategy:   strategy,
		Candidates: len(candidates),
	}
	if len(candidates) == 0 {
		s.logger.Debug("no legal move",
			slog.Int("turn", turn.Number),
			slog.String("strategy", string(strategy)),
		)
		return decision, nil
	}

	eval := st.Prepare(turn)
	for i, pos := range candidates {
		if i > 0 && ctx.Err() != nil {
			decision.Truncated = true
			break
		}

		score := eval.Score(pos)
		decision.Scored++
		if !decision.Found || score > decision.Score {
			decision.Found = true
			decision.Position = pos
			decision.Score = score
		}
	}

	s.logger.Debug("best position",
		slog.Int("turn", turn.Number),
		slog.String("strategy", string(strategy)),
		slog.Int("candidates", decision.Candidates),
		slog.Int("scored", decision.Scored),
		slog.Int("x", decision.Position.X),
		slog.Int("y", decision.Position.Y),
		slog.Float64("score", decision.Score),
	)

	return decision, nil
}

// ScoreAll returns every legal anchor with its score, in enumeration order
func (s *Service) ScoreAll(turn *model.Turn, strategy model.Strategy) ([]Candidate, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategy)
	}

	positions := board.AllPositions(turn.Grid, turn.Piece, turn.Player)
	if len(positions) == 0 {
		return nil, nil
	}

	eval := st.Prepare(turn)
	candidates := make([]Candidate, len(positions))
	for i, pos := range positions {
		candidates[i] = Candidate{Position: pos, Score: eval.Score(pos)}
	}
	return candidates, nil
}

package scoring

import (
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/metrics"
)

// Blocking weights
const (
	blockingEnemyWeight    = 0.7
	blockingDistanceWeight = 0.3
)

// BlockingStrategy crowds the opponent's territory
type BlockingStrategy struct{}

// NewBlockingStrategy creates a new BlockingStrategy
func NewBlockingStrategy() *BlockingStrategy {
	return &BlockingStrategy{}
}

// Name returns the strategy tag
func (s *BlockingStrategy) Name() model.Strategy {
	return model.StrategyBlocking
}

// Prepare returns an evaluator bound to the turn
func (s *BlockingStrategy) Prepare(turn *model.Turn) Evaluator {
	return EvaluatorFunc(func(pos model.Position) float64 {
		return BlockingScore(turn.Grid, turn.Piece, pos, turn.Enemy)
	})
}

// BlockingScore rewards enemy neighbours and penalises mean distance to the
// enemy's cells. With no enemy cells the score is -Inf.
func BlockingScore(grid *model.Grid, piece model.Piece, pos model.Position, enemy model.Owner) float64 {
	adjacent := metrics.LocalDensity(grid, piece, pos, metrics.IsOwnedBy(enemy))
	distance := metrics.DistanceToNearestEnemySet(grid, piece, pos, enemy)

	return blockingEnemyWeight*float64(adjacent) - blockingDistanceWeight*distance
}

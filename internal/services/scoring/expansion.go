package scoring

import (
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/metrics"
)

// Expansion weights
const (
	expansionDensityWeight = 0.5
	expansionAreaWeight    = 0.3
	expansionEdgeWeight    = 0.2
)

// ExpansionStrategy favours open, well-connected space near the borders
type ExpansionStrategy struct{}

// NewExpansionStrategy creates a new ExpansionStrategy
func NewExpansionStrategy() *ExpansionStrategy {
	return &ExpansionStrategy{}
}

// Name returns the strategy tag
func (s *ExpansionStrategy) Name() model.Strategy {
	return model.StrategyExpansion
}

// Prepare returns an evaluator bound to the turn
func (s *ExpansionStrategy) Prepare(turn *model.Turn) Evaluator {
	return EvaluatorFunc(func(pos model.Position) float64 {
		return ExpansionScore(turn.Grid, turn.Piece, pos)
	})
}

// ExpansionScore rewards empty neighbours and reachable free area, and
// penalises distance from the nearest border.
func ExpansionScore(grid *model.Grid, piece model.Piece, pos model.Position) float64 {
	density := metrics.LocalDensity(grid, piece, pos, metrics.IsEmpty)
	area := metrics.ConnectedFreeArea(grid, piece.Translate(pos))
	edge := metrics.DistanceToEdge(grid, pos)

	return expansionDensityWeight*float64(density) +
		expansionAreaWeight*float64(area) -
		expansionEdgeWeight*float64(edge)
}

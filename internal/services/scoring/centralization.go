package scoring

import (
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/metrics"
)

// Centralization weights
const (
	centralizationDistanceWeight = 0.6
	centralizationAreaWeight     = 0.4
)

// CentralizationStrategy pulls placements toward the grid centre
type CentralizationStrategy struct{}

// NewCentralizationStrategy creates a new CentralizationStrategy
func NewCentralizationStrategy() *CentralizationStrategy {
	return &CentralizationStrategy{}
}

// Name returns the strategy tag
func (s *CentralizationStrategy) Name() model.Strategy {
	return model.StrategyCentralization
}

// Prepare measures the free area around the centre once; it is the same for
// every candidate of the turn.
func (s *CentralizationStrategy) Prepare(turn *model.Turn) Evaluator {
	area := CenterFreeArea(turn.Grid)
	return EvaluatorFunc(func(pos model.Position) float64 {
		return centralizationScore(turn.Grid, pos, area)
	})
}

// CenterFreeArea is the free area reachable from the exact centre cell
func CenterFreeArea(grid *model.Grid) int {
	return metrics.ConnectedFreeArea(grid, []model.Position{grid.Center()})
}

// CentralizationScore penalises distance to the centre and rewards free
// area around the centre.
func CentralizationScore(grid *model.Grid, pos model.Position) float64 {
	return centralizationScore(grid, pos, CenterFreeArea(grid))
}

func centralizationScore(grid *model.Grid, pos model.Position, centerArea int) float64 {
	distance := metrics.DistanceToCenterPoint(grid, pos)
	return -centralizationDistanceWeight*distance + centralizationAreaWeight*float64(centerArea)
}

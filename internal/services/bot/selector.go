package bot

import (
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/metrics"
)

// Strategy selection thresholds
const (
	// ExpansionFreeCellThreshold is the free cell count above which a
	// leading player keeps expanding
	ExpansionFreeCellThreshold = 50
	// BlockingDensityMargin is how far the enemy must lead before blocking
	BlockingDensityMargin = 10
)

// BoardSummary holds the aggregate metrics strategy selection depends on
type BoardSummary struct {
	FreeCells            int
	PlayerDensity        int
	EnemyDensity         int
	PlayerCenterDistance float64
	EnemyCenterDistance  float64
}

// Summarize computes the aggregate metrics for player and enemy
func Summarize(grid *model.Grid, player, enemy model.Owner) BoardSummary {
	return BoardSummary{
		FreeCells:            metrics.FreeCells(grid),
		PlayerDensity:        metrics.Density(grid, player),
		EnemyDensity:         metrics.Density(grid, enemy),
		PlayerCenterDistance: metrics.DistanceToCenter(grid, player),
		EnemyCenterDistance:  metrics.DistanceToCenter(grid, enemy),
	}
}

// SelectStrategy picks the strategy for a turn from the board as a whole
func SelectStrategy(grid *model.Grid, player, enemy model.Owner) model.Strategy {
	return Summarize(grid, player, enemy).Strategy()
}

// Strategy applies the selection rules in order; the first match wins.
// Equal distances, including both +Inf, fall through to expansion.
func (b BoardSummary) Strategy() model.Strategy {
	if b.FreeCells > ExpansionFreeCellThreshold && b.PlayerDensity > b.EnemyDensity {
		return model.StrategyExpansion
	}
	if b.EnemyDensity > b.PlayerDensity+BlockingDensityMargin {
		return model.StrategyBlocking
	}
	if b.PlayerCenterDistance > b.EnemyCenterDistance {
		return model.StrategyCentralization
	}
	return model.StrategyExpansion
}

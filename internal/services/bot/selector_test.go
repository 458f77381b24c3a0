package bot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/testutil"
)

func TestBoardSummaryStrategy(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name    string
		summary BoardSummary
		want    model.Strategy
	}{
		{
			name:    "leading with open board expands",
			summary: BoardSummary{FreeCells: 51, PlayerDensity: 5, EnemyDensity: 4, PlayerCenterDistance: 9, EnemyCenterDistance: 1},
			want:    model.StrategyExpansion,
		},
		{
			name:    "free cells at threshold does not trigger rule one",
			summary: BoardSummary{FreeCells: 50, PlayerDensity: 5, EnemyDensity: 4, PlayerCenterDistance: 9, EnemyCenterDistance: 1},
			want:    model.StrategyCentralization,
		},
		{
			name:    "enemy far ahead blocks",
			summary: BoardSummary{FreeCells: 80, PlayerDensity: 5, EnemyDensity: 16, PlayerCenterDistance: 9, EnemyCenterDistance: 1},
			want:    model.StrategyBlocking,
		},
		{
			name:    "enemy exactly at margin does not block",
			summary: BoardSummary{FreeCells: 80, PlayerDensity: 5, EnemyDensity: 15, PlayerCenterDistance: 1, EnemyCenterDistance: 2},
			want:    model.StrategyExpansion,
		},
		{
			name:    "farther from centre centralizes",
			summary: BoardSummary{FreeCells: 10, PlayerDensity: 5, EnemyDensity: 5, PlayerCenterDistance: 3, EnemyCenterDistance: 2},
			want:    model.StrategyCentralization,
		},
		{
			name:    "no own cells against enemy centralizes",
			summary: BoardSummary{FreeCells: 10, PlayerDensity: 0, EnemyDensity: 3, PlayerCenterDistance: inf, EnemyCenterDistance: 2},
			want:    model.StrategyCentralization,
		},
		{
			name:    "both infinite falls through to expansion",
			summary: BoardSummary{FreeCells: 9, PlayerCenterDistance: inf, EnemyCenterDistance: inf},
			want:    model.StrategyExpansion,
		},
		{
			name:    "default expands",
			summary: BoardSummary{FreeCells: 10, PlayerDensity: 5, EnemyDensity: 5, PlayerCenterDistance: 2, EnemyCenterDistance: 2},
			want:    model.StrategyExpansion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Strategy())
		})
	}
}

func TestSummarize(t *testing.T) {
	grid := testutil.MustGrid(
		"O.x.",
		"...X",
		"....",
	)

	got := Summarize(grid, model.OwnerO, model.OwnerX)

	assert.Equal(t, 9, got.FreeCells)
	assert.Equal(t, 1, got.PlayerDensity)
	assert.Equal(t, 2, got.EnemyDensity)
	// centre (2,1)
	assert.InDelta(t, math.Sqrt(5), got.PlayerCenterDistance, 1e-12)
	assert.InDelta(t, 1.0, got.EnemyCenterDistance, 1e-12)
}

func TestSelectStrategyDependsOnlyOnAggregates(t *testing.T) {
	a := testutil.MustGrid(
		"O....",
		".....",
		".....",
		".....",
		"....X",
	)
	b := testutil.MustGrid(
		"....O",
		".....",
		".....",
		".....",
		"X....",
	)

	require.Equal(t, Summarize(a, model.OwnerO, model.OwnerX), Summarize(b, model.OwnerO, model.OwnerX))
	assert.Equal(t,
		SelectStrategy(a, model.OwnerO, model.OwnerX),
		SelectStrategy(b, model.OwnerO, model.OwnerX),
	)
}

func TestSelectStrategyEmptyBoard(t *testing.T) {
	grid := testutil.MustGrid(testutil.EmptyRows(3, 3)...)
	assert.Equal(t, model.StrategyExpansion, SelectStrategy(grid, model.OwnerO, model.OwnerX))
}

func TestSelectStrategyBlocking(t *testing.T) {
	grid := testutil.MustGrid(
		"XXXX",
		"XXXX",
		"XXXX",
		"O...",
	)
	assert.Equal(t, model.StrategyBlocking, SelectStrategy(grid, model.OwnerO, model.OwnerX))
}

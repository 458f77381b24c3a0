package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/scoring"
	"github.com/mcoot/fillerbot/internal/testutil"
)

type ScoringSuite struct {
	suite.Suite
	turn *model.Turn
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

func (s *ScoringSuite) SetupTest() {
	s.turn = &model.Turn{
		Number: 1,
		Grid: testutil.MustGrid(
			".....",
			".....",
			"..O..",
			".....",
			"...X.",
		),
		Piece:  testutil.SingleCell(),
		Player: model.OwnerO,
		Enemy:  model.OwnerX,
	}
}

func (s *ScoringSuite) TestRegistryCoversEveryStrategy() {
	registry := scoring.DefaultStrategies()

	s.Len(registry, len(model.ValidStrategies()))
	for _, tag := range model.ValidStrategies() {
		st, ok := registry[tag]
		s.Require().True(ok, "missing %s", tag)
		s.Equal(tag, st.Name())
	}
}

func (s *ScoringSuite) TestExpansionScore() {
	// (2,1): 3 empty neighbours, 23 reachable free cells, edge margin 1
	got := scoring.ExpansionScore(s.turn.Grid, s.turn.Piece, model.Position{X: 2, Y: 1})
	s.InDelta(0.5*3+0.3*23-0.2*1, got, 1e-9)
}

func (s *ScoringSuite) TestCentralizationScore() {
	// centre (2,2) is occupied, so the centre area term is zero
	got := scoring.CentralizationScore(s.turn.Grid, model.Position{X: 2, Y: 1})
	s.InDelta(-0.6, got, 1e-9)
}

func (s *ScoringSuite) TestCentralizationPrepareMatchesDirectScore() {
	grid := testutil.MustGrid(
		"O....",
		".....",
		".....",
	)
	turn := &model.Turn{Grid: grid, Piece: testutil.SingleCell(), Player: model.OwnerO, Enemy: model.OwnerX}
	eval := scoring.NewCentralizationStrategy().Prepare(turn)

	for _, pos := range []model.Position{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 4, Y: 2}} {
		s.Equal(scoring.CentralizationScore(grid, pos), eval.Score(pos))
	}
	s.Equal(14, scoring.CenterFreeArea(grid))
}

func (s *ScoringSuite) TestBlockingScore() {
	grid := testutil.MustGrid("O.X")
	got := scoring.BlockingScore(grid, testutil.SingleCell(), model.Position{X: 1, Y: 0}, model.OwnerX)
	s.InDelta(0.7*1-0.3*1, got, 1e-9)
}

func (s *ScoringSuite) TestBlockingUsesActualEnemy() {
	grid := testutil.MustGrid("X.O")
	asX := scoring.BlockingScore(grid, testutil.SingleCell(), model.Position{X: 1, Y: 0}, model.OwnerO)
	asO := scoring.BlockingScore(grid, testutil.SingleCell(), model.Position{X: 1, Y: 0}, model.OwnerX)
	s.Equal(asX, asO)
	s.InDelta(0.4, asX, 1e-9)
}

func (s *ScoringSuite) TestBlockingWithoutEnemyIsNegativeInf() {
	grid := testutil.MustGrid("O..")
	got := scoring.BlockingScore(grid, testutil.SingleCell(), model.Position{X: 1, Y: 0}, model.OwnerX)
	s.True(math.IsInf(got, -1))
}

func (s *ScoringSuite) TestScoresAreDeterministic() {
	positions := []model.Position{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}}
	for tag, st := range scoring.DefaultStrategies() {
		first := st.Prepare(s.turn)
		second := st.Prepare(s.turn)
		for _, pos := range positions {
			a := first.Score(pos)
			b := first.Score(pos)
			c := second.Score(pos)
			s.Equal(math.Float64bits(a), math.Float64bits(b), "%s at %v", tag, pos)
			s.Equal(math.Float64bits(a), math.Float64bits(c), "%s at %v", tag, pos)
		}
	}
}

// Package metrics holds the pure board measurements that strategies are
// built from. None of them mutate the grid.
package metrics

import (
	"math"

	"github.com/mcoot/fillerbot/internal/model"
)

// neighbours are the four orthogonal directions
var neighbours = [4]model.Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// CellPredicate tests a single grid position
type CellPredicate func(grid *model.Grid, pos model.Position) bool

// IsEmpty matches in-bounds empty cells
func IsEmpty(grid *model.Grid, pos model.Position) bool {
	return grid.OwnedBy(pos, model.OwnerNone)
}

// IsOwnedBy matches in-bounds cells belonging to owner
func IsOwnedBy(owner model.Owner) CellPredicate {
	return func(grid *model.Grid, pos model.Position) bool {
		return grid.OwnedBy(pos, owner)
	}
}

// FreeCells counts empty cells on the whole grid
func FreeCells(grid *model.Grid) int {
	return grid.Count(model.OwnerNone)
}

// Density counts the cells owned by owner, regardless of letter case
func Density(grid *model.Grid, owner model.Owner) int {
	return grid.Count(owner)
}

// DistanceToCenter is the mean Euclidean distance from each cell owned by
// owner to the grid centre. It is +Inf when owner holds no cells.
func DistanceToCenter(grid *model.Grid, owner model.Owner) float64 {
	center := grid.Center()
	total := 0.0
	count := 0
	for y, row := range grid.Cells {
		for x, cell := range row {
			if cell.Owner == owner {
				total += euclidean(model.Position{X: x, Y: y}, center)
				count++
			}
		}
	}
	if count == 0 {
		return math.Inf(1)
	}
	return total / float64(count)
}

// LocalDensity counts, for every piece cell anchored at pos, the orthogonal
// neighbours matching match. A neighbour shared by two piece cells is
// counted twice, and neighbours inside the piece itself are not excluded.
func LocalDensity(grid *model.Grid, piece model.Piece, pos model.Position, match CellPredicate) int {
	count := 0
	for _, cell := range piece.Translate(pos) {
		for _, d := range neighbours {
			n := model.Position{X: cell.X + d.X, Y: cell.Y + d.Y}
			if match(grid, n) {
				count++
			}
		}
	}
	return count
}

// ConnectedFreeArea counts the distinct empty cells reachable through
// 4-connected empty cells from any of starts. Starts that are off the grid
// or not empty contribute nothing. The visited set is shared across starts.
func ConnectedFreeArea(grid *model.Grid, starts []model.Position) int {
	visited := make([]bool, grid.Width*grid.Height)
	queue := make([]model.Position, 0, len(starts))
	area := 0

	visit := func(pos model.Position) {
		if !IsEmpty(grid, pos) {
			return
		}
		idx := pos.Y*grid.Width + pos.X
		if visited[idx] {
			return
		}
		visited[idx] = true
		area++
		queue = append(queue, pos)
	}

	for _, start := range starts {
		visit(start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range neighbours {
				visit(model.Position{X: cur.X + d.X, Y: cur.Y + d.Y})
			}
		}
	}
	return area
}

// DistanceToEdge is the margin from pos to the nearest border
func DistanceToEdge(grid *model.Grid, pos model.Position) int {
	return min(pos.X, pos.Y, grid.Width-1-pos.X, grid.Height-1-pos.Y)
}

// DistanceToCenterPoint is the Euclidean distance from pos to the grid centre
func DistanceToCenterPoint(grid *model.Grid, pos model.Position) float64 {
	return euclidean(pos, grid.Center())
}

// DistanceToNearestEnemySet is the mean Euclidean distance over every pair
// of (piece cell anchored at pos, cell owned by enemy). It is +Inf when
// enemy holds no cells.
func DistanceToNearestEnemySet(grid *model.Grid, piece model.Piece, pos model.Position, enemy model.Owner) float64 {
	var enemyCells []model.Position
	for y, row := range grid.Cells {
		for x, cell := range row {
			if cell.Owner == enemy {
				enemyCells = append(enemyCells, model.Position{X: x, Y: y})
			}
		}
	}
	if len(enemyCells) == 0 {
		return math.Inf(1)
	}

	total := 0.0
	count := 0
	for _, cell := range piece.Translate(pos) {
		for _, e := range enemyCells {
			total += euclidean(cell, e)
			count++
		}
	}
	if count == 0 {
		return math.Inf(1)
	}
	return total / float64(count)
}

func euclidean(a, b model.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

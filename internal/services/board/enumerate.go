package board

import (
	"github.com/mcoot/fillerbot/internal/model"
)

// AllPositions returns every anchor at which piece can legally be placed.
//
// Anchors are visited row by row from the top, left to right within a row,
// and the result keeps that order. Callers rely on it for tie-breaking.
func AllPositions(grid *model.Grid, piece model.Piece, player model.Owner) []model.Position {
	var positions []model.Position
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			pos := model.Position{X: x, Y: y}
			if IsLegal(grid, piece, pos, player) {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

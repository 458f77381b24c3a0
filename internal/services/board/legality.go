package board

import (
	"github.com/mcoot/fillerbot/internal/model"
)

// IsLegal reports whether anchoring piece at pos is a legal placement for player.
//
// Every piece cell must be on the grid and either empty or owned by player,
// and exactly one piece cell must cover a cell player already owns. Covering
// two or more of the player's cells is illegal.
func IsLegal(grid *model.Grid, piece model.Piece, pos model.Position, player model.Owner) bool {
	overlap := 0
	for _, off := range piece.Cells {
		abs := model.Position{X: pos.X + off.Col, Y: pos.Y + off.Row}
		if !grid.InBounds(abs) {
			return false
		}

		switch grid.Get(abs).Owner {
		case model.OwnerNone:
		case player:
			overlap++
		default:
			return false
		}
	}
	return overlap == 1
}

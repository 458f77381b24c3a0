package testutil

import (
	"github.com/mcoot/fillerbot/internal/model"
)

// MustGrid builds a grid from ASCII rows, top row first, and panics on bad input
func MustGrid(rows ...string) *model.Grid {
	g, err := model.NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// MustPiece builds a piece from rows read top row first, so "#" characters
// land at the offsets they visually occupy: first row is row offset 0.
func MustPiece(rows ...string) model.Piece {
	p, err := model.ParsePiece(rows, model.OrientationTopDown)
	if err != nil {
		panic(err)
	}
	return p
}

// SingleCell is the one-cell piece
func SingleCell() model.Piece {
	return model.Piece{Cells: []model.Offset{{Row: 0, Col: 0}}}
}

// EmptyRows returns height rows of width '.' characters
func EmptyRows(width, height int) []string {
	row := make([]byte, width)
	for i := range row {
		row[i] = '.'
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = string(row)
	}
	return rows
}

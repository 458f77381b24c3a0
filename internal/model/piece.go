package model

import "fmt"

// Offset is a piece cell relative to the piece anchor
type Offset struct {
	Row int
	Col int
}

// Piece is the shape to place this turn
type Piece struct {
	Cells []Offset
}

// PieceOrientation selects how piece input rows map to row offsets
type PieceOrientation string

const (
	// OrientationBottomUp gives the last input row offset 0 and the first
	// row offset height-1.
	OrientationBottomUp PieceOrientation = "bottom-up"
	// OrientationTopDown gives the first input row offset 0.
	OrientationTopDown PieceOrientation = "top-down"
)

// ParsePieceOrientation validates an orientation name
func ParsePieceOrientation(s string) (PieceOrientation, error) {
	switch o := PieceOrientation(s); o {
	case OrientationBottomUp, OrientationTopDown:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// NewPiece creates a piece from its offsets
func NewPiece(cells []Offset) (Piece, error) {
	if len(cells) == 0 {
		return Piece{}, ErrEmptyPiece
	}
	return Piece{Cells: cells}, nil
}

// ParsePiece builds a piece from its input rows. Every character other
// than '.' is a piece cell.
func ParsePiece(rows []string, orientation PieceOrientation) (Piece, error) {
	height := len(rows)
	var cells []Offset
	for i, row := range rows {
		rowOffset := i
		if orientation != OrientationTopDown {
			rowOffset = height - i - 1
		}
		col := 0
		for _, r := range row {
			if r != '.' {
				cells = append(cells, Offset{Row: rowOffset, Col: col})
			}
			col++
		}
	}
	return NewPiece(cells)
}

// Translate returns the absolute cells covered when the piece is anchored at pos
func (p Piece) Translate(pos Position) []Position {
	out := make([]Position, len(p.Cells))
	for i, off := range p.Cells {
		out[i] = Position{X: pos.X + off.Col, Y: pos.Y + off.Row}
	}
	return out
}

package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is an anchor or absolute cell on the grid
type Position struct {
	X int // column, 0-indexed from left
	Y int // row, 0-indexed from top
}

// Grid is one turn's snapshot of the board. It is never mutated after parsing.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell // Row-major: Cells[y][x]
}

// NewGrid builds a grid from board rows, top row first
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}

	width := utf8.RuneCountInString(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if utf8.RuneCountInString(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedGrid, y, utf8.RuneCountInString(row), width)
		}
		cells[y] = make([]Cell, 0, width)
		for _, r := range row {
			cell, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", y, err)
			}
			cells[y] = append(cells[y], cell)
		}
	}

	return &Grid{
		Width:  width,
		Height: len(rows),
		Cells:  cells,
	}, nil
}

// InBounds returns true if the position lies on the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Get returns the cell at the given position, or an empty cell if out of bounds
func (g *Grid) Get(pos Position) Cell {
	if !g.InBounds(pos) {
		return Cell{}
	}
	return g.Cells[pos.Y][pos.X]
}

// OwnedBy returns true if the in-bounds cell at pos belongs to owner.
// Passing OwnerNone tests for an empty in-bounds cell.
func (g *Grid) OwnedBy(pos Position, owner Owner) bool {
	return g.InBounds(pos) && g.Cells[pos.Y][pos.X].Owner == owner
}

// Center returns the integer-divided centre cell
func (g *Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// Count returns the number of cells belonging to owner
func (g *Grid) Count(owner Owner) int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Owner == owner {
				count++
			}
		}
	}
	return count
}

// String renders the grid in protocol characters, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Rune())
		}
	}
	return sb.String()
}

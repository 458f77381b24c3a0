package model

import (
	"fmt"
	"unicode"
)

// Owner identifies who holds a cell. The zero value is an empty cell.
type Owner uint8

const (
	OwnerNone Owner = iota
	// OwnerO is the first player, assigned to "p1"
	OwnerO
	// OwnerX is the second player
	OwnerX
)

// Symbol returns the protocol character for the owner
func (o Owner) Symbol() rune {
	switch o {
	case OwnerO:
		return 'O'
	case OwnerX:
		return 'X'
	default:
		return '.'
	}
}

// String implements fmt.Stringer
func (o Owner) String() string {
	return string(o.Symbol())
}

// Opponent returns the other player. OwnerNone has no opponent.
func (o Owner) Opponent() Owner {
	switch o {
	case OwnerO:
		return OwnerX
	case OwnerX:
		return OwnerO
	default:
		return OwnerNone
	}
}

// MarshalText encodes the owner as its protocol symbol
func (o Owner) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes a protocol symbol, case-insensitively
func (o *Owner) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidCell, text)
	}
	cell, err := ParseCell(rune(text[0]))
	if err != nil {
		return err
	}
	*o = cell.Owner
	return nil
}

// Cell is a single grid square
type Cell struct {
	Owner Owner
	// Recent is set for lowercase owner letters, which the game server
	// uses to mark the most recently placed piece. It never affects ownership.
	Recent bool
}

// IsEmpty returns true if nobody owns the cell
func (c Cell) IsEmpty() bool {
	return c.Owner == OwnerNone
}

// ParseCell decodes a board character
func ParseCell(r rune) (Cell, error) {
	switch unicode.ToUpper(r) {
	case '.':
		return Cell{}, nil
	case 'O':
		return Cell{Owner: OwnerO, Recent: unicode.IsLower(r)}, nil
	case 'X':
		return Cell{Owner: OwnerX, Recent: unicode.IsLower(r)}, nil
	default:
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, r)
	}
}

// Rune encodes the cell back into its board character
func (c Cell) Rune() rune {
	sym := c.Owner.Symbol()
	if c.Recent && c.Owner != OwnerNone {
		return unicode.ToLower(sym)
	}
	return sym
}

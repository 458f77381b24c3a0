package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrEmptyGrid   = errors.New("grid has no cells")
	ErrRaggedGrid  = errors.New("grid rows have unequal length")
	ErrInvalidCell = errors.New("invalid cell character")

	// Piece errors
	ErrEmptyPiece         = errors.New("piece has no cells")
	ErrInvalidOrientation = errors.New("invalid piece orientation")

	// Protocol errors
	ErrMalformedPlayerLine  = errors.New("malformed player line")
	ErrMalformedBoardHeader = errors.New("malformed board header")
	ErrMalformedRow         = errors.New("malformed board row")
	ErrMalformedPieceHeader = errors.New("malformed piece header")

	// Strategy errors
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)

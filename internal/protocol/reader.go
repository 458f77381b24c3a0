// Package protocol reads the game server's line-oriented turn input and
// writes the chosen coordinates back.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/fillerbot/internal/model"
)

const (
	// firstPlayerTag marks the player line of the first player
	firstPlayerTag = "p1"
	// pieceHeaderToken starts every piece block
	pieceHeaderToken = "Piece"
	// maxLineSize bounds a single input line
	maxLineSize = 1 << 20
)

// Reader decodes the input stream. It returns io.EOF whenever the stream
// ends, including partway through a turn.
type Reader struct {
	scanner     *bufio.Scanner
	orientation model.PieceOrientation
}

// NewReader creates a Reader over r
func NewReader(r io.Reader, orientation model.PieceOrientation) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{
		scanner:     scanner,
		orientation: orientation,
	}
}

// ReadPlayer reads the one-time player line. A line mentioning "p1" means
// the bot plays O; anything else means X.
func (r *Reader) ReadPlayer() (model.Owner, error) {
	line, err := r.nextNonBlank()
	if err != nil {
		return model.OwnerNone, err
	}
	if strings.Contains(line, firstPlayerTag) {
		return model.OwnerO, nil
	}
	return model.OwnerX, nil
}

// ReadTurn reads one board block followed by one piece block
func (r *Reader) ReadTurn() (*model.Grid, model.Piece, error) {
	grid, err := r.readGrid()
	if err != nil {
		return nil, model.Piece{}, err
	}
	piece, err := r.readPiece()
	if err != nil {
		return nil, model.Piece{}, err
	}
	return grid, piece, nil
}

// readGrid reads "<word> <height> ..." followed by height rows of
// "<index> <cells>". Lines with fewer than two fields, such as the column
// ruler, are skipped.
func (r *Reader) readGrid() (*model.Grid, error) {
	header, err := r.nextNonBlank()
	if err != nil {
		return nil, err
	}
	height, err := headerCount(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrMalformedBoardHeader, header)
	}

	rows := make([]string, 0, height)
	for len(rows) < height {
		line, err := r.next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		rows = append(rows, fields[1])
	}

	grid, err := model.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrMalformedRow, err)
	}
	return grid, nil
}

// readPiece reads "Piece <height> ..." followed by height shape rows
func (r *Reader) readPiece() (model.Piece, error) {
	header, err := r.next()
	if err != nil {
		return model.Piece{}, err
	}
	fields := strings.Fields(header)
	if len(fields) == 0 || fields[0] != pieceHeaderToken {
		return model.Piece{}, fmt.Errorf("%w: %q", model.ErrMalformedPieceHeader, header)
	}
	height, err := headerCount(header)
	if err != nil {
		return model.Piece{}, fmt.Errorf("%w: %q", model.ErrMalformedPieceHeader, header)
	}

	rows := make([]string, height)
	for i := range rows {
		line, err := r.next()
		if err != nil {
			return model.Piece{}, err
		}
		rows[i] = strings.TrimSpace(line)
	}
	return model.ParsePiece(rows, r.orientation)
}

func (r *Reader) next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *Reader) nextNonBlank() (string, error) {
	for {
		line, err := r.next()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// headerCount parses the second field of a header, ignoring a trailing colon
func headerCount(header string) (int, error) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return 0, fmt.Errorf("header has %d fields", len(fields))
	}
	n, err := strconv.Atoi(strings.TrimSuffix(fields[1], ":"))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("non-positive count %d", n)
	}
	return n, nil
}

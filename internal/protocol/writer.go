package protocol

import (
	"fmt"
	"io"

	"github.com/mcoot/fillerbot/internal/model"
)

// Writer encodes moves for the game server
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMove writes the anchor as "<row> <column>"
func (w *Writer) WriteMove(pos model.Position) error {
	_, err := fmt.Fprintf(w.w, "%d %d\n", pos.Y, pos.X)
	return err
}

// WriteNoMove writes the "0 0" line that concedes the game
func (w *Writer) WriteNoMove() error {
	_, err := fmt.Fprintln(w.w, "0 0")
	return err
}

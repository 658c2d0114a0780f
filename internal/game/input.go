package game

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/vovakirdan/t2048/internal/board"
)

// letterMoves maps single-key tokens to moves.
var letterMoves = map[string]board.Move{
	"w": board.Up,
	"s": board.Down,
	"a": board.Left,
	"d": board.Right,
	"k": board.Up,
	"j": board.Down,
	"h": board.Left,
	"l": board.Right,
}

// ScannerInput reads whitespace-separated move tokens such as "w" or "left".
// Unknown tokens are skipped. It returns io.EOF when the reader is drained.
type ScannerInput struct {
	sc *bufio.Scanner
}

// NewScannerInput creates a ScannerInput reading from r.
func NewScannerInput(r io.Reader) *ScannerInput {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &ScannerInput{sc: sc}
}

// Acknowledge consumes one token of any kind.
func (in *ScannerInput) Acknowledge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	return nil
}

// NextMove returns the next recognised move.
func (in *ScannerInput) NextMove(ctx context.Context) (board.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !in.sc.Scan() {
			if err := in.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		tok := strings.ToLower(in.sc.Text())
		if m, ok := letterMoves[tok]; ok {
			return m, nil
		}
		if m, err := board.ParseMove(tok); err == nil {
			return m, nil
		}
	}
}

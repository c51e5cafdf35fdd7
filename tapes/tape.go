package tapes

import (
	"errors"
	"fmt"
)

// DefaultSize is the initial number of cells.
const DefaultSize = 30_000

var (
	ErrEndOfTape     = errors.New("end of tape")
	ErrCellOverflow  = errors.New("cell overflow")
	ErrCellUnderflow = errors.New("cell underflow")
)

type CellPolicy uint8

const (
	// Wrap computes increments and decrements modulo 256.
	Wrap CellPolicy = iota
	// Strict fails instead of wrapping.
	Strict
)

func (c CellPolicy) String() string {
	switch c {
	case Wrap:
		return "wrap"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("CellPolicy(%d)", uint8(c))
}

type GrowPolicy uint8

const (
	// Grow appends a zero cell when moving right past the last cell.
	Grow GrowPolicy = iota
	// Fixed fails when moving right past the last cell.
	Fixed
)

func (g GrowPolicy) String() string {
	switch g {
	case Grow:
		return "grow"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("GrowPolicy(%d)", uint8(g))
}

// Tape is a sequence of byte cells and a data pointer.
// Pos is always a valid index into Cells.
type Tape struct {
	Cells []byte
	Pos   int
	Cell  CellPolicy
	Grow  GrowPolicy
}

func New(size int, cell CellPolicy, grow GrowPolicy) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tape{
		Cells: make([]byte, size),
		Cell:  cell,
		Grow:  grow,
	}
}

func (t *Tape) Increment() error {
	if t.Cells[t.Pos] == 0xff && t.Cell == Strict {
		return fmt.Errorf("%w: cell %d", ErrCellOverflow, t.Pos)
	}
	t.Cells[t.Pos]++
	return nil
}

func (t *Tape) Decrement() error {
	if t.Cells[t.Pos] == 0 && t.Cell == Strict {
		return fmt.Errorf("%w: cell %d", ErrCellUnderflow, t.Pos)
	}
	t.Cells[t.Pos]--
	return nil
}

func (t *Tape) Read() byte {
	return t.Cells[t.Pos]
}

func (t *Tape) Write(v byte) {
	t.Cells[t.Pos] = v
}

func (t *Tape) MoveRight() error {
	if t.Pos == len(t.Cells)-1 {
		if t.Grow == Fixed {
			return fmt.Errorf("%w: right bound %d", ErrEndOfTape, t.Pos)
		}
		t.Cells = append(t.Cells, 0)
	}
	t.Pos++
	return nil
}

func (t *Tape) MoveLeft() error {
	if t.Pos == 0 {
		return fmt.Errorf("%w: left bound", ErrEndOfTape)
	}
	t.Pos--
	return nil
}

// Window returns up to radius cells on each side of the pointer and the
// index of the pointer inside the returned slice.
func (t *Tape) Window(radius int) ([]byte, int) {
	from := max(0, t.Pos-radius)
	to := min(len(t.Cells), t.Pos+radius+1)
	return t.Cells[from:to], t.Pos - from
}

package bfvm

import (
	"fmt"
	"io"

	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/tapes"
)

type Config struct {
	TapeSize int
	Cell     tapes.CellPolicy
	Grow     tapes.GrowPolicy
	// MaxSteps bounds the instructions dispatched by one Interpret call, zero is unbounded.
	MaxSteps int64
}

// State is everything that survives between interpretation passes.
type State struct {
	Tape    *tapes.Tape
	Program *programs.Cursor
	// Depth is the number of loops entered and not yet left.
	Depth int
	// Executed is set when the symbol under the cursor already ran.
	Executed bool
}

type VM struct {
	State
	Config Config
	In     LineSource
	Out    io.Writer
	// Steps counts dispatched instructions since the last reset.
	Steps  int64
	outBuf [1]byte
}

func NewVM(config Config, in LineSource, out io.Writer) *VM {
	v := &VM{
		Config: config,
		In:     in,
		Out:    out,
	}
	v.Reset()
	return v
}

func (v *VM) Reset() {
	v.State = State{
		Tape:    tapes.New(v.Config.TapeSize, v.Config.Cell, v.Config.Grow),
		Program: new(programs.Cursor),
	}
	v.Steps = 0
}

// Feed appends the instructions in text to the program.
func (v *VM) Feed(text string) {
	v.Program.AppendText(text)
}

// Complete reports loops still open once the whole program has run.
func (v *VM) Complete() error {
	if v.Depth == 0 {
		return nil
	}
	sym, _ := v.Program.Current()
	return &Error{
		Pos:    v.Program.Pos,
		Symbol: sym,
		Err:    fmt.Errorf("%w: %d loops open at end of program", programs.ErrMissingClosingBracket, v.Depth),
	}
}

// Dump writes a short trace of the machine state.
func (v *VM) Dump(w io.Writer) {
	fmt.Fprintf(w, "pointer: %d/%d\n", v.Tape.Pos, len(v.Tape.Cells))
	fmt.Fprintf(w, "depth: %d\n", v.Depth)
	if sym, err := v.Program.Current(); err == nil {
		fmt.Fprintf(w, "position: %d/%d %s\n", v.Program.Pos, v.Program.Len(), sym)
	}
	fmt.Fprintf(w, "steps: %d\n", v.Steps)
	cells, at := v.Tape.Window(8)
	for i, c := range cells {
		if i == at {
			fmt.Fprintf(w, "[%02x] ", c)
		} else {
			fmt.Fprintf(w, "%02x ", c)
		}
	}
	fmt.Fprintln(w, "")
}

package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/programs"
)

var (
	ErrStdinRead   = errors.New("standard input read failure")
	ErrOutputWrite = errors.New("standard output write failure")
	ErrStepLimit   = errors.New("step limit exceeded")
)

// Error is a fatal interpretation error at an instruction.
type Error struct {
	Pos    int
	Symbol programs.Symbol
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("instruction %d (%s): %v", e.Pos, e.Symbol, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

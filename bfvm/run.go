package bfvm

import (
	"fmt"

	"github.com/reusee/bf/programs"
)

// Interpret runs the program from the first symbol not yet executed until the
// program is exhausted or an instruction fails.
func (v *VM) Interpret() error {
	if v.Program.Len() == 0 {
		return nil
	}
	if v.Executed {
		if !v.Program.Advance() {
			return nil
		}
		v.Executed = false
	}

	var steps int64
	for {
		pos := v.Program.Pos
		sym, err := v.Program.Current()
		if err != nil {
			return &Error{Pos: pos, Err: err}
		}
		fail := func(err error) error {
			return &Error{
				Pos:    pos,
				Symbol: sym,
				Err:    err,
			}
		}
		steps++
		if v.Config.MaxSteps > 0 && steps > v.Config.MaxSteps {
			return fail(fmt.Errorf("%w: %d", ErrStepLimit, v.Config.MaxSteps))
		}
		v.Steps++

		switch sym {

		case programs.LoopStart:
			if v.Tape.Read() == 0 {
				more, err := programs.SkipForward(v.Program, &v.Depth)
				if err != nil {
					return fail(err)
				}
				if !more {
					v.Executed = true
					return nil
				}
				continue
			}
			v.Depth++

		case programs.LoopEnd:
			if v.Depth == 0 {
				return fail(fmt.Errorf("%w: no loop entered", programs.ErrMissingOpeningBracket))
			}
			// leave the iteration, the loop start re-enters
			v.Depth--
			if v.Tape.Read() != 0 {
				if err := programs.SkipBackward(v.Program, &v.Depth); err != nil {
					return fail(err)
				}
				continue
			}

		case programs.Output:
			v.outBuf[0] = v.Tape.Read()
			if _, err := v.Out.Write(v.outBuf[:]); err != nil {
				return fail(fmt.Errorf("%w: %w", ErrOutputWrite, err))
			}

		case programs.Decrement:
			if err := v.Tape.Decrement(); err != nil {
				return fail(err)
			}

		case programs.Increment:
			if err := v.Tape.Increment(); err != nil {
				return fail(err)
			}

		case programs.MoveLeft:
			if err := v.Tape.MoveLeft(); err != nil {
				return fail(err)
			}

		case programs.MoveRight:
			if err := v.Tape.MoveRight(); err != nil {
				return fail(err)
			}

		case programs.Input:
			b, err := readCell(v.In)
			if err != nil {
				return fail(err)
			}
			v.Tape.Write(b)

		default:
			return fail(fmt.Errorf("unknown symbol: %d", sym))
		}

		if !v.Program.Advance() {
			v.Executed = true
			return nil
		}
	}
}

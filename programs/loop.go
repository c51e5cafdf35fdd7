package programs

import "fmt"

// SkipForward moves the cursor from a loop start to just past its matching
// loop end. depth is the caller's nesting counter, it is back at its initial
// value on success. more is false when the matching loop end is the last
// symbol, in which case the cursor stays on it.
func SkipForward(c *Cursor, depth *int) (more bool, err error) {
	start := c.Pos
	target := *depth
	for {
		sym, err := c.Current()
		if err != nil {
			return false, err
		}
		switch sym {
		case LoopStart:
			*depth++
		case LoopEnd:
			if *depth <= target {
				return false, fmt.Errorf("%w: loop end at %d", ErrMissingOpeningBracket, c.Pos)
			}
			*depth--
			if *depth == target {
				return c.Advance(), nil
			}
		}
		if !c.Advance() {
			return false, fmt.Errorf("%w: loop start at %d", ErrMissingClosingBracket, start)
		}
	}
}

// SkipBackward moves the cursor from a loop end back to its matching loop
// start and leaves it there. The cursor must start on a loop end.
func SkipBackward(c *Cursor, depth *int) error {
	start := c.Pos
	target := *depth
	for {
		sym, err := c.Current()
		if err != nil {
			return err
		}
		switch sym {
		case LoopEnd:
			*depth++
		case LoopStart:
			*depth--
			if *depth == target {
				return nil
			}
		}
		if err := c.Retreat(); err != nil {
			return fmt.Errorf("loop end at %d: %w", start, err)
		}
	}
}

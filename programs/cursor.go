package programs

import "fmt"

// Cursor is a token sequence with a current position.
// Pos stays inside Symbols once Symbols is non-empty.
type Cursor struct {
	Symbols []Symbol
	Pos     int
}

func NewCursor(text string) *Cursor {
	return &Cursor{
		Symbols: Tokenize(text),
	}
}

func (c *Cursor) Len() int {
	return len(c.Symbols)
}

func (c *Cursor) Current() (Symbol, error) {
	if len(c.Symbols) == 0 {
		return 0, ErrEmptyProgram
	}
	return c.Symbols[c.Pos], nil
}

// Advance moves to the next symbol and reports whether there was one.
func (c *Cursor) Advance() bool {
	if c.Pos+1 >= len(c.Symbols) {
		return false
	}
	c.Pos++
	return true
}

func (c *Cursor) Retreat() error {
	if c.Pos == 0 {
		return fmt.Errorf("%w: reached program start", ErrMissingOpeningBracket)
	}
	c.Pos--
	return nil
}

func (c *Cursor) Append(symbols ...Symbol) {
	c.Symbols = append(c.Symbols, symbols...)
}

func (c *Cursor) AppendText(text string) {
	c.Append(Tokenize(text)...)
}

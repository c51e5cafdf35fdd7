package programs

import "errors"

var (
	ErrMissingClosingBracket = errors.New("missing closing bracket")
	ErrMissingOpeningBracket = errors.New("missing opening bracket")
	ErrEmptyProgram          = errors.New("empty program")
)

package programs

import "fmt"

type Symbol uint8

const (
	LoopStart Symbol = iota
	LoopEnd
	Output
	Decrement
	Increment
	MoveLeft
	MoveRight
	Input
)

var symbolChars = [...]byte{
	LoopStart: '[',
	LoopEnd:   ']',
	Output:    '.',
	Decrement: '-',
	Increment: '+',
	MoveLeft:  '<',
	MoveRight: '>',
	Input:     ',',
}

func (s Symbol) Char() byte {
	if int(s) < len(symbolChars) {
		return symbolChars[s]
	}
	return '?'
}

func (s Symbol) String() string {
	if int(s) < len(symbolChars) {
		return string(rune(symbolChars[s]))
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

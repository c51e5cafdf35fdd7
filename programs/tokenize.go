package programs

// Tokenize returns the instruction symbols in text. Every other character is a comment.
func Tokenize(text string) []Symbol {
	ret := make([]Symbol, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			ret = append(ret, LoopStart)
		case ']':
			ret = append(ret, LoopEnd)
		case '.':
			ret = append(ret, Output)
		case '-':
			ret = append(ret, Decrement)
		case '+':
			ret = append(ret, Increment)
		case '<':
			ret = append(ret, MoveLeft)
		case '>':
			ret = append(ret, MoveRight)
		case ',':
			ret = append(ret, Input)
		}
	}
	return ret
}

// Format renders symbols back to source text.
func Format(symbols []Symbol) string {
	buf := make([]byte, len(symbols))
	for i, s := range symbols {
		buf[i] = s.Char()
	}
	return string(buf)
}

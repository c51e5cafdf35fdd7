package bfvm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineSource yields input lines without the line terminator.
// *readline.Instance implements it.
type LineSource interface {
	Readline() (string, error)
}

type readerLineSource struct {
	r *bufio.Reader
}

func NewLineSource(r io.Reader) LineSource {
	return readerLineSource{
		r: bufio.NewReader(r),
	}
}

func (s readerLineSource) Readline() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readCell(in LineSource) (byte, error) {
	if in == nil {
		return 0, fmt.Errorf("%w: no input", ErrStdinRead)
	}
	line, err := in.Readline()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStdinRead, err)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStdinRead, err)
	}
	return byte(n), nil
}

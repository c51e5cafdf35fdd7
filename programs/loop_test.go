package programs

import (
	"errors"
	"testing"
)

const nested = "--[[..[,]..]...]"

func TestSkipForward(t *testing.T) {
	c := NewCursor(nested)
	c.Pos = 3
	depth := 1
	more, err := SkipForward(c, &depth)
	if err != nil {
		t.Fatal(err)
	}
	if !more {
		t.Fatal()
	}
	if c.Pos != 12 {
		t.Fatalf("got %d", c.Pos)
	}
	if depth != 1 {
		t.Fatalf("got %d", depth)
	}
}

func TestSkipForwardToEnd(t *testing.T) {
	c := NewCursor(nested)
	c.Pos = 2
	depth := 0
	more, err := SkipForward(c, &depth)
	if err != nil {
		t.Fatal(err)
	}
	if more {
		t.Fatal("should be exhausted")
	}
	if c.Pos != 15 {
		t.Fatalf("got %d", c.Pos)
	}
	if depth != 0 {
		t.Fatalf("got %d", depth)
	}
}

func TestSkipForwardInner(t *testing.T) {
	c := NewCursor(nested)
	c.Pos = 6
	depth := 2
	more, err := SkipForward(c, &depth)
	if err != nil {
		t.Fatal(err)
	}
	if !more || c.Pos != 9 {
		t.Fatalf("got %v %d", more, c.Pos)
	}
}

func TestSkipBackward(t *testing.T) {
	c := NewCursor(nested)
	c.Pos = 11
	depth := 1
	if err := SkipBackward(c, &depth); err != nil {
		t.Fatal(err)
	}
	if c.Pos != 3 {
		t.Fatalf("got %d", c.Pos)
	}
	if depth != 1 {
		t.Fatalf("got %d", depth)
	}

	c.Pos = 15
	depth = 0
	if err := SkipBackward(c, &depth); err != nil {
		t.Fatal(err)
	}
	if c.Pos != 2 {
		t.Fatalf("got %d", c.Pos)
	}
}

func TestSkipBackwardAtStart(t *testing.T) {
	c := NewCursor("[+]")
	c.Pos = 2
	depth := 0
	if err := SkipBackward(c, &depth); err != nil {
		t.Fatal(err)
	}
	if c.Pos != 0 {
		t.Fatalf("got %d", c.Pos)
	}
}

func TestMissingClosingBracket(t *testing.T) {
	c := NewCursor("+[[-]")
	c.Pos = 1
	depth := 0
	_, err := SkipForward(c, &depth)
	if !errors.Is(err, ErrMissingClosingBracket) {
		t.Fatalf("got %v", err)
	}

	c = NewCursor("[")
	depth = 0
	_, err = SkipForward(c, &depth)
	if !errors.Is(err, ErrMissingClosingBracket) {
		t.Fatalf("got %v", err)
	}
}

func TestMissingOpeningBracket(t *testing.T) {
	c := NewCursor("+-]")
	c.Pos = 2
	depth := 0
	err := SkipBackward(c, &depth)
	if !errors.Is(err, ErrMissingOpeningBracket) {
		t.Fatalf("got %v", err)
	}

	c = NewCursor("]")
	depth = 0
	_, err = SkipForward(c, &depth)
	if !errors.Is(err, ErrMissingOpeningBracket) {
		t.Fatalf("got %v", err)
	}
}

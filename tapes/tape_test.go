package tapes

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tape := New(0, Wrap, Grow)
	if len(tape.Cells) != DefaultSize {
		t.Fatalf("got %d", len(tape.Cells))
	}
	for range 256 {
		if err := tape.Increment(); err != nil {
			t.Fatal(err)
		}
	}
	if v := tape.Read(); v != 0 {
		t.Fatalf("got %d", v)
	}
	if err := tape.Decrement(); err != nil {
		t.Fatal(err)
	}
	if v := tape.Read(); v != 255 {
		t.Fatalf("got %d", v)
	}
}

func TestStrict(t *testing.T) {
	tape := New(1, Strict, Grow)
	for range 255 {
		if err := tape.Increment(); err != nil {
			t.Fatal(err)
		}
	}
	err := tape.Increment()
	if !errors.Is(err, ErrCellOverflow) {
		t.Fatalf("got %v", err)
	}
	if v := tape.Read(); v != 255 {
		t.Fatalf("got %d", v)
	}

	tape.Write(0)
	err = tape.Decrement()
	if !errors.Is(err, ErrCellUnderflow) {
		t.Fatalf("got %v", err)
	}
	if v := tape.Read(); v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestMoveLeft(t *testing.T) {
	for _, grow := range []GrowPolicy{Grow, Fixed} {
		tape := New(3, Wrap, grow)
		if err := tape.MoveLeft(); !errors.Is(err, ErrEndOfTape) {
			t.Fatalf("%v: got %v", grow, err)
		}
		if tape.Pos != 0 {
			t.Fatalf("got %d", tape.Pos)
		}
	}
}

func TestGrow(t *testing.T) {
	tape := New(2, Wrap, Grow)
	tape.Write(7)
	for range 3 {
		if err := tape.MoveRight(); err != nil {
			t.Fatal(err)
		}
	}
	if tape.Pos != 3 {
		t.Fatalf("got %d", tape.Pos)
	}
	if len(tape.Cells) != 4 {
		t.Fatalf("got %d", len(tape.Cells))
	}
	if v := tape.Read(); v != 0 {
		t.Fatalf("got %d", v)
	}
	for range 3 {
		if err := tape.MoveLeft(); err != nil {
			t.Fatal(err)
		}
	}
	if v := tape.Read(); v != 7 {
		t.Fatalf("got %d", v)
	}
}

func TestFixed(t *testing.T) {
	tape := New(2, Wrap, Fixed)
	if err := tape.MoveRight(); err != nil {
		t.Fatal(err)
	}
	if err := tape.MoveRight(); !errors.Is(err, ErrEndOfTape) {
		t.Fatalf("got %v", err)
	}
	if tape.Pos != 1 {
		t.Fatalf("got %d", tape.Pos)
	}
	if len(tape.Cells) != 2 {
		t.Fatalf("got %d", len(tape.Cells))
	}
}

func TestWindow(t *testing.T) {
	tape := New(10, Wrap, Grow)
	tape.Pos = 1
	cells, at := tape.Window(3)
	if len(cells) != 5 || at != 1 {
		t.Fatalf("got %d %d", len(cells), at)
	}
	tape.Pos = 9
	cells, at = tape.Window(3)
	if len(cells) != 4 || at != 3 {
		t.Fatalf("got %d %d", len(cells), at)
	}
}

package bfvm

import (
	"encoding/gob"
	"io"

	"github.com/reusee/bf/programs"
)

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v.State); err != nil {
		return err
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	// decode into a zero value, gob leaves fields absent from the stream untouched
	var state State
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return err
	}
	if state.Program == nil {
		state.Program = new(programs.Cursor)
	}
	v.State = state
	return nil
}

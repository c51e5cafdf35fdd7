package bfvm

import (
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/tapes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

func (Module) Config(
	size bfconfigs.TapeSize,
	cell bfconfigs.CellPolicy,
	grow bfconfigs.TapePolicy,
	maxSteps bfconfigs.MaxSteps,
) Config {
	return Config{
		TapeSize: int(size),
		Cell:     tapes.CellPolicy(cell),
		Grow:     tapes.GrowPolicy(grow),
		MaxSteps: int64(maxSteps),
	}
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// New creates a VM reading Input lines from in.
type New func(in LineSource) *VM

func (Module) New(
	config Config,
	stdout Stdout,
) New {
	return func(in LineSource) *VM {
		return NewVM(config, in, stdout)
	}
}

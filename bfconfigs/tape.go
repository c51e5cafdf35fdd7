package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/tapes"
	"github.com/reusee/bf/vars"
)

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", "initial number of cells")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		vars.DerefOrZero(configs.First[*int](loader, "tape_size")),
		tapes.DefaultSize,
	))
}

// MaxSteps bounds the instructions run by one interpretation pass, zero is unbounded.
type MaxSteps int64

var maxStepsFlag = cmds.Var[int64]("-max-steps")

func init() {
	cmds.Describe("-max-steps", "fail a pass after this many instructions, 0 for no limit")
}

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int64](loader, "max_steps"),
	))
}

type CellPolicy tapes.CellPolicy

var strictFlag = cmds.Switch("-strict")

func init() {
	cmds.Describe("-strict", "fail on cell overflow and underflow instead of wrapping")
}

func (Module) CellPolicy(
	loader configs.Loader,
) CellPolicy {
	if *strictFlag {
		return CellPolicy(tapes.Strict)
	}
	switch str := configs.First[string](loader, "cell_policy"); str {
	case "", "wrap":
		return CellPolicy(tapes.Wrap)
	case "strict":
		return CellPolicy(tapes.Strict)
	default:
		panic(fmt.Errorf("bad cell_policy: %s", str))
	}
}

type TapePolicy tapes.GrowPolicy

var fixedTapeFlag = cmds.Switch("-fixed-tape")

func init() {
	cmds.Describe("-fixed-tape", "fail when moving past the last cell instead of growing")
}

func (Module) TapePolicy(
	loader configs.Loader,
) TapePolicy {
	if *fixedTapeFlag {
		return TapePolicy(tapes.Fixed)
	}
	switch str := configs.First[string](loader, "tape_policy"); str {
	case "", "grow":
		return TapePolicy(tapes.Grow)
	case "fixed":
		return TapePolicy(tapes.Fixed)
	default:
		panic(fmt.Errorf("bad tape_policy: %s", str))
	}
}

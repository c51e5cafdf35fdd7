package debugs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/programs"
)

// VMGlobals exposes the interpreter state to a tap.
func VMGlobals(vm *bfvm.VM) map[string]any {
	cells, at := vm.Tape.Window(16)
	return map[string]any{
		"pointer":  vm.Tape.Pos,
		"depth":    vm.Depth,
		"position": vm.Program.Pos,
		"program":  programs.Format(vm.Program.Symbols),
		"steps":    vm.Steps,
		"tape":     cells,
		"tape_at":  at,
		"cell": func(i int) int {
			if i < 0 || i >= len(vm.Tape.Cells) {
				return -1
			}
			return int(vm.Tape.Cells[i])
		},
	}
}

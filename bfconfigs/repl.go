package bfconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

// OnError selects how an interactive session recovers from a fatal error.
type OnError string

const (
	// OnErrorReset discards the tape and the program.
	OnErrorReset OnError = "reset"
	// OnErrorRollback restores the state from before the failing line.
	OnErrorRollback OnError = "rollback"
)

var rollbackFlag = cmds.Switch("-rollback")

func init() {
	cmds.Describe("-rollback", "on interactive errors, restore the state before the failing line instead of resetting")
}

func (Module) OnError(
	loader configs.Loader,
) OnError {
	if *rollbackFlag {
		return OnErrorRollback
	}
	switch str := configs.First[string](loader, "on_error"); str {
	case "", string(OnErrorReset):
		return OnErrorReset
	case string(OnErrorRollback):
		return OnErrorRollback
	default:
		panic(fmt.Errorf("bad on_error: %s", str))
	}
}

// Prompt is the interactive prompt, every %d is replaced by the line number.
type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		configs.First[string](loader, "prompt"),
		"[%d] ",
	))
}

func (p Prompt) Format(line int) string {
	return strings.ReplaceAll(string(p), "%d", strconv.Itoa(line))
}

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".bf_history"))
	}
	return ""
}

// TapOnError opens a debug tap when an interactive line fails.
type TapOnError bool

var tapFlag = cmds.Switch("-tap")

func init() {
	cmds.Describe("-tap", "open a starlark tap on interactive errors")
}

func (Module) TapOnError() TapOnError {
	return TapOnError(*tapFlag)
}

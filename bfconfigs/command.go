package bfconfigs

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/tapes"
)

// Inspect is the configuration inspection requested on the command line.
type Inspect string

const (
	InspectNone     Inspect = ""
	InspectSettings Inspect = "settings"
	InspectPaths    Inspect = "paths"
)

var inspect Inspect

func init() {
	cmds.Define("config", cmds.Func(func() {
		inspect = InspectSettings
	}).WithSubs(map[string]*cmds.Command{
		"paths": cmds.Func(func() {
			inspect = InspectPaths
		}).Desc("print the config files in load order"),
	}).Desc("print the resolved settings instead of running"))
}

func (Module) Inspect() Inspect {
	return inspect
}

// WriteSettings writes the resolved settings in config file syntax.
type WriteSettings func(w io.Writer) error

func (Module) WriteSettings(
	size TapeSize,
	maxSteps MaxSteps,
	cell CellPolicy,
	tape TapePolicy,
	onError OnError,
	prompt Prompt,
	history HistoryFile,
) WriteSettings {
	return func(w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"tape_size: %d\nmax_steps: %d\ncell_policy: %s\ntape_policy: %s\non_error: %s\nprompt: %s\nhistory_file: %s\n",
			size,
			maxSteps,
			strconv.Quote(tapes.CellPolicy(cell).String()),
			strconv.Quote(tapes.GrowPolicy(tape).String()),
			strconv.Quote(string(onError)),
			strconv.Quote(string(prompt)),
			strconv.Quote(string(history)),
		)
		return err
	}
}

// WritePaths writes one config file path per line.
type WritePaths func(w io.Writer) error

func (Module) WritePaths(
	paths ConfigPaths,
) WritePaths {
	return func(w io.Writer) error {
		for _, path := range paths {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}
		return nil
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/runners"
	"github.com/reusee/dscope"
)

var files []string

func main() {
	cmds.Positional(func(arg string) {
		files = append(files, arg)
	})
	cmds.GlobalExecutor.PositionalUsage("[file]")
	cmds.Execute(os.Args[1:])

	if len(files) > 1 {
		fmt.Fprintf(os.Stderr, "Unused command arguments: %v\n", files[1:])
		os.Exit(1)
	}

	scope := dscope.New(
		new(runners.Module),
		modes.ForProduction(),
	)
	ctx := context.Background()

	var inspect bfconfigs.Inspect
	scope.Call(func(i bfconfigs.Inspect) {
		inspect = i
	})
	switch inspect {
	case bfconfigs.InspectSettings:
		scope.Call(func(
			write bfconfigs.WriteSettings,
		) {
			if err := write(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		})
		return
	case bfconfigs.InspectPaths:
		scope.Call(func(
			write bfconfigs.WritePaths,
		) {
			if err := write(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		})
		return
	}

	if len(files) == 1 {
		scope.Call(func(
			runFile runners.RunFile,
		) {
			if err := runFile(ctx, files[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Program exited with error: %v\n", err)
				os.Exit(1)
			}
		})
		return
	}

	scope.Call(func(
		openTerminal runners.OpenTerminal,
		repl runners.REPL,
	) {
		terminal, closeTerminal, err := openTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer closeTerminal()
		if err := repl(ctx, terminal); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	})
}

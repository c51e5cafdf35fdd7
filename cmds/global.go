package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Positional sets the handler for arguments that are not commands.
func Positional(fn func(arg string)) {
	GlobalExecutor.Positional(fn)
}

// Execute runs args against the global executor and exits on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintf(os.Stderr, "run with -h for usage\n")
		os.Exit(2)
	}
}

// Describe sets the description of a defined command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command %s", name))
	}
	command.Desc(desc)
}

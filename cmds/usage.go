package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

func (p *Executor) WriteUsage(w io.Writer) {
	if p.positionalUsage != "" {
		fmt.Fprintf(w, "usage: %s [commands] %s\n\n", commandName(), p.positionalUsage)
	}
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, indent int) {
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}
	var lines [][2]string
	for command, ns := range names {
		if command == nil {
			continue
		}
		slices.Sort(ns)
		lines = append(lines, [2]string{strings.Join(ns, ", "), command.Description})
	}
	slices.SortFunc(lines, func(a, b [2]string) int {
		return strings.Compare(a[0], b[0])
	})
	prefix := strings.Repeat("  ", indent)
	for _, line := range lines {
		if line[1] == "" {
			fmt.Fprintf(w, "%s%s\n", prefix, line[0])
		} else {
			fmt.Fprintf(w, "%s%s\t%s\n", prefix, line[0], line[1])
		}
		command := commands[strings.Split(line[0], ", ")[0]]
		if len(command.Subs) > 0 {
			writeCommands(w, maps.Clone(command.Subs), indent+1)
		}
	}
}

func commandName() string {
	if len(os.Args) == 0 {
		return "bf"
	}
	name := os.Args[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

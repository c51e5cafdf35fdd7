package runners

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"golang.org/x/term"
)

// Terminal is an interactive line source. *readline.Instance implements it.
type Terminal interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// OpenTerminal returns a line editor when stdin is a terminal and a plain
// line reader otherwise.
type OpenTerminal func() (Terminal, func(), error)

func (Module) OpenTerminal(
	stdin bfvm.Stdin,
	history bfconfigs.HistoryFile,
	prompt bfconfigs.Prompt,
) OpenTerminal {
	return func() (Terminal, func(), error) {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      prompt.Format(0),
				HistoryFile: string(history),
			})
			if err != nil {
				return nil, nil, err
			}
			return rl, func() {
				rl.Close()
			}, nil
		}
		return plainTerminal{
			LineSource: bfvm.NewLineSource(stdin),
		}, func() {}, nil
	}
}

type plainTerminal struct {
	bfvm.LineSource
}

func (plainTerminal) SetPrompt(string) {}

// REPL reads program lines from the terminal and interprets each one
// against the accumulated session. The Input instruction reads from the
// same terminal.
type REPL func(ctx context.Context, terminal Terminal) error

func (Module) REPL(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newVM bfvm.New,
	onError bfconfigs.OnError,
	prompt bfconfigs.Prompt,
	tapOnError bfconfigs.TapOnError,
	tap debugs.Tap,
	stderr Stderr,
) REPL {
	return func(ctx context.Context, terminal Terminal) error {
		vm := newVM(terminal)
		lineNumber := 0
		snapshot := new(bytes.Buffer)
		pending := new(strings.Builder)

		for {
			terminal.SetPrompt(prompt.Format(lineNumber))
			line, err := terminal.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				if line == "" {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			lineNumber++

			// a line ending with ';' is held until a line without one
			trimmed := strings.TrimSpace(line)
			if strings.HasSuffix(trimmed, ";") {
				pending.WriteString(line)
				pending.WriteByte('\n')
				continue
			}
			if trimmed == "" && pending.Len() == 0 {
				continue
			}
			pending.WriteString(line)
			line = pending.String()
			pending.Reset()

			lineCtx, _ := newSpan(ctx, "")
			if onError == bfconfigs.OnErrorRollback {
				snapshot.Reset()
				if err := vm.Snapshot(snapshot); err != nil {
					logger.WarnContext(lineCtx, "snapshot", "error", err)
				}
			}

			vm.Feed(line)
			err = vm.Interpret()
			logger.DebugContext(lineCtx, "interpreted",
				"line", lineNumber,
				"steps", vm.Steps,
				"instructions", vm.Program.Len(),
			)
			if err == nil {
				continue
			}

			if tapOnError {
				tap(lineCtx, "interpret error", debugs.VMGlobals(vm))
			}

			if onError == bfconfigs.OnErrorRollback && snapshot.Len() > 0 {
				restoreErr := vm.Restore(snapshot)
				if restoreErr == nil {
					fmt.Fprintf(stderr, "Invalid input code: %v. Rolling back line %d\n", err, lineNumber)
					continue
				}
				logger.WarnContext(lineCtx, "restore", "error", restoreErr)
			}
			fmt.Fprintf(stderr, "Invalid input code: %v. Resetting interpreter\n", err)
			vm.Reset()
		}
	}
}

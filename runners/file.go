package runners

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

// RunFile interprets a whole program file.
type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newVM bfvm.New,
	stdin bfvm.Stdin,
) RunFile {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "")

		content, err := os.ReadFile(path)
		if err != nil {
			return wrap(fmt.Errorf("cannot read file %s: %w", path, err))
		}

		vm := newVM(bfvm.NewLineSource(stdin))
		vm.Feed(string(content))
		logger.DebugContext(ctx, "run file",
			"path", path,
			"instructions", vm.Program.Len(),
		)

		err = vm.Interpret()
		if err == nil {
			err = vm.Complete()
		}
		if err != nil {
			if logger.Enabled(ctx, slog.LevelDebug) {
				buf := new(strings.Builder)
				vm.Dump(buf)
				logger.DebugContext(ctx, "interpreter state",
					"trace", buf.String(),
				)
			}
			return logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "run file done",
			"steps", vm.Steps,
		)
		return nil
	}
}

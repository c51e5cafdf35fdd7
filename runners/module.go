package runners

import (
	"io"
	"os"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Debugs debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Stderr receives diagnostics meant for the user.
type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}

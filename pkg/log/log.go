// Package log provides the process-wide structured logger used by skinlang.
//
// Library code never constructs its own zap logger; it calls L() and lets
// the hosting process (cmd/skinlint, cmd/skinwatch, or an editor-integration
// host) decide where logs go. The default is a no-op logger so importing
// skinlang as a library never produces surprise output.
package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	l := zap.NewNop()
	current.Store(l)
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return current.Load()
}

// SetLogger replaces the process-wide logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

package checked

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)
	pkgLogger     atomic.Pointer[slog.Logger]
)

// SetLogger sets the logger used for the package's diagnostics. A nil logger
// discards them, which is the default.
//
// Nothing is logged on the error path itself; the only record emitted is the
// one-time resolution of the backtrace setting.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}

	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}

	return discardLogger
}

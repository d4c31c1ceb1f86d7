package checked

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Environment variables controlling backtrace capture. EnvLibBacktrace takes
// precedence; a value other than "0" enables capture.
const (
	EnvLibBacktrace = "CHECKED_LIB_BACKTRACE"
	EnvBacktrace    = "CHECKED_BACKTRACE"
)

const (
	backtraceUnresolved uint32 = iota
	backtraceOff
	backtraceOn
)

var backtraceState atomic.Uint32

// BacktraceEnabled reports whether errors capture a stack backtrace. The
// environment is consulted on the first call only.
func BacktraceEnabled() bool {
	switch backtraceState.Load() {
	case backtraceOff:
		return false
	case backtraceOn:
		return true
	}

	enabled, source := readBacktraceEnv()
	state := backtraceOff
	if enabled {
		state = backtraceOn
	}

	// Concurrent first callers compute the same state; one store wins.
	if backtraceState.CompareAndSwap(backtraceUnresolved, state) {
		logger().Debug("resolved backtrace capture",
			slog.Bool("enabled", enabled),
			slog.String("source", source),
		)
	}

	return backtraceState.Load() == backtraceOn
}

func readBacktraceEnv() (bool, string) {
	for _, name := range []string{EnvLibBacktrace, EnvBacktrace} {
		if v, ok := os.LookupEnv(name); ok {
			return v != "0", name
		}
	}

	return false, ""
}

package checked

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
)

var (
	// ErrOutOfBounds indicates a value that is not representable in the
	// target kind of a conversion.
	ErrOutOfBounds = errors.New("value is out of bounds")

	// ErrInvalidText indicates bytes or code units that are not valid text.
	ErrInvalidText = errors.New("invalid text")

	// ErrInvalidLength indicates a slice whose length does not match the
	// required fixed length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrOverflow indicates an arithmetic result that does not fit its type.
	ErrOverflow = errors.New("overflow")

	// ErrDivisionByZero indicates a zero divisor or multiplier.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain indicates an argument outside the domain of an operation,
	// such as a non-positive logarithm argument or an oversized shift.
	ErrDomain = errors.New("argument out of domain")

	// ErrZero indicates a zero value where a non-zero one is required.
	ErrZero = errors.New("unexpected zero value")
)

const maxStackDepth = 64

// Error is a single conversion or arithmetic failure. It is immutable once
// constructed.
//
// Error and all fmt verbs render the same text: the message, followed by
// "\nstack backtrace:\n" and the trace when one was captured.
type Error struct {
	msg   string
	cause error
	stack []uintptr
}

var (
	_ error          = (*Error)(nil)
	_ fmt.Formatter  = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)

// New returns an error with the given message. cause is the sentinel the error
// matches through [errors.Is]; it may be nil.
func New(cause error, msg string) *Error {
	return newError(cause, msg)
}

// Errorf is like [New] but formats the message.
func Errorf(cause error, format string, args ...any) *Error {
	return newError(cause, fmt.Sprintf(format, args...))
}

func newError(cause error, msg string) *Error {
	e := &Error{msg: msg, cause: cause}
	if BacktraceEnabled() {
		e.stack = capture()
	}

	return e
}

// capture records the stack of the caller of New or Errorf.
func capture() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	// skip runtime.Callers, capture, newError and New/Errorf
	n := runtime.Callers(4, pcs)

	return pcs[:n]
}

// Message returns the message without any backtrace.
func (e *Error) Message() string {
	return e.msg
}

// Backtrace returns the captured stack, one "function\n\tfile:line" entry per
// frame, or an empty string when capture was disabled.
func (e *Error) Backtrace() string {
	if len(e.stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return b.String()
}

func (e *Error) Error() string {
	trace := e.Backtrace()
	if trace == "" {
		return e.msg
	}

	return e.msg + "\nstack backtrace:\n" + trace
}

// Unwrap returns the sentinel the error was created with.
func (e *Error) Unwrap() error {
	return e.cause
}

// Format renders e identically for every verb.
func (e *Error) Format(s fmt.State, _ rune) {
	_, _ = io.WriteString(s, e.Error())
}

// LogValue groups the message and, when captured, the backtrace so that
// structured handlers keep them apart.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("message", e.msg)}
	if trace := e.Backtrace(); trace != "" {
		attrs = append(attrs, slog.String("backtrace", trace))
	}

	return slog.GroupValue(attrs...)
}

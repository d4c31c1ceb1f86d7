// Package checked turns silently wrapping or panicking integer operations into
// explicit errors that say exactly what went wrong.
//
// Every failure in this module is an [*Error]: a message such as
//
//	cannot convert value -5 from int32 to uint32: value is out of bounds
//	overflow: 255 + 1
//	division by zero: 7 / 0
//
// optionally followed by a stack backtrace. Backtraces are captured only when
// the CHECKED_LIB_BACKTRACE or CHECKED_BACKTRACE environment variable is set
// to something other than "0"; the former wins when both are set. The
// environment is read once, on the first error, and cached for the lifetime of
// the process.
//
// The message is the primary contract. For callers that need to branch on the
// kind of failure, each error also matches one of the sentinel errors
// ([ErrOutOfBounds], [ErrOverflow], [ErrDivisionByZero], ...) via [errors.Is].
//
// Conversions live in [go.dw1.io/checked/convert], arithmetic in
// [go.dw1.io/checked/ops] and the integer kind classifier in
// [go.dw1.io/checked/kind].
package checked

// Package prim holds the partial integer primitives: each returns its result
// and ok=false instead of wrapping or panicking. They carry no messages; the
// ops package turns a false ok into a descriptive error.
package prim

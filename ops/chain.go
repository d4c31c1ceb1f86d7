package ops

import "go.dw1.io/checked/kind"

// Int chains checked operations on a signed integer. The first failing
// operation records its error; every later operation is skipped.
type Int[T kind.Signed] struct {
	v   T
	err error
}

// I starts a chain at v.
func I[T kind.Signed](v T) Int[T] {
	return Int[T]{v: v}
}

func (c Int[T]) then(op func(T) (T, error)) Int[T] {
	if c.err != nil {
		return c
	}

	v, err := op(c.v)
	return Int[T]{v: v, err: err}
}

// Value returns the result of the chain, or the first error.
func (c Int[T]) Value() (T, error) {
	return c.v, c.err
}

// Err returns the first error of the chain.
func (c Int[T]) Err() error {
	return c.err
}

// Add adds b to the chain value.
func (c Int[T]) Add(b T) Int[T] {
	return c.then(func(a T) (T, error) { return Add(a, b) })
}

// Sub subtracts b from the chain value.
func (c Int[T]) Sub(b T) Int[T] {
	return c.then(func(a T) (T, error) { return Sub(a, b) })
}

// Mul multiplies the chain value by b.
func (c Int[T]) Mul(b T) Int[T] {
	return c.then(func(a T) (T, error) { return Mul(a, b) })
}

// Div divides the chain value by b.
func (c Int[T]) Div(b T) Int[T] {
	return c.then(func(a T) (T, error) { return Div(a, b) })
}

// Rem replaces the chain value with its remainder by b.
func (c Int[T]) Rem(b T) Int[T] {
	return c.then(func(a T) (T, error) { return Rem(a, b) })
}

// DivEuclid replaces the chain value with its Euclidean quotient by b.
func (c Int[T]) DivEuclid(b T) Int[T] {
	return c.then(func(a T) (T, error) { return DivEuclid(a, b) })
}

// RemEuclid replaces the chain value with its Euclidean remainder by b.
func (c Int[T]) RemEuclid(b T) Int[T] {
	return c.then(func(a T) (T, error) { return RemEuclid(a, b) })
}

// Neg negates the chain value.
func (c Int[T]) Neg() Int[T] {
	return c.then(Neg[T])
}

// Abs replaces the chain value with its absolute value.
func (c Int[T]) Abs() Int[T] {
	return c.then(Abs[T])
}

// Shl shifts the chain value left by n bits.
func (c Int[T]) Shl(n uint32) Int[T] {
	return c.then(func(a T) (T, error) { return Shl(a, n) })
}

// Shr shifts the chain value right by n bits.
func (c Int[T]) Shr(n uint32) Int[T] {
	return c.then(func(a T) (T, error) { return Shr(a, n) })
}

// Pow raises the chain value to exp.
func (c Int[T]) Pow(exp uint32) Int[T] {
	return c.then(func(a T) (T, error) { return Pow(a, exp) })
}

// Isqrt replaces the chain value with its integer square root.
func (c Int[T]) Isqrt() Int[T] {
	return c.then(Isqrt[T])
}

// ILog ends the chain with the base-base logarithm of its value.
func (c Int[T]) ILog(base T) (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog(c.v, base)
}

// ILog2 ends the chain with the base 2 logarithm of its value.
func (c Int[T]) ILog2() (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog2(c.v)
}

// ILog10 ends the chain with the base 10 logarithm of its value.
func (c Int[T]) ILog10() (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog10(c.v)
}

// Uint chains checked operations on an unsigned integer. The first failing
// operation records its error; every later operation is skipped.
type Uint[T kind.Unsigned] struct {
	v   T
	err error
}

// U starts a chain at v.
func U[T kind.Unsigned](v T) Uint[T] {
	return Uint[T]{v: v}
}

func (c Uint[T]) then(op func(T) (T, error)) Uint[T] {
	if c.err != nil {
		return c
	}

	v, err := op(c.v)
	return Uint[T]{v: v, err: err}
}

// Value returns the result of the chain, or the first error.
func (c Uint[T]) Value() (T, error) {
	return c.v, c.err
}

// Err returns the first error of the chain.
func (c Uint[T]) Err() error {
	return c.err
}

// Add adds b to the chain value.
func (c Uint[T]) Add(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return Add(a, b) })
}

// Sub subtracts b from the chain value.
func (c Uint[T]) Sub(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return Sub(a, b) })
}

// Mul multiplies the chain value by b.
func (c Uint[T]) Mul(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return Mul(a, b) })
}

// Div divides the chain value by b.
func (c Uint[T]) Div(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return Div(a, b) })
}

// Rem replaces the chain value with its remainder by b.
func (c Uint[T]) Rem(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return Rem(a, b) })
}

// DivEuclid replaces the chain value with its Euclidean quotient by b.
func (c Uint[T]) DivEuclid(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return DivEuclid(a, b) })
}

// RemEuclid replaces the chain value with its Euclidean remainder by b.
func (c Uint[T]) RemEuclid(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return RemEuclid(a, b) })
}

// Shl shifts the chain value left by n bits.
func (c Uint[T]) Shl(n uint32) Uint[T] {
	return c.then(func(a T) (T, error) { return Shl(a, n) })
}

// Shr shifts the chain value right by n bits.
func (c Uint[T]) Shr(n uint32) Uint[T] {
	return c.then(func(a T) (T, error) { return Shr(a, n) })
}

// Pow raises the chain value to exp.
func (c Uint[T]) Pow(exp uint32) Uint[T] {
	return c.then(func(a T) (T, error) { return Pow(a, exp) })
}

// Isqrt replaces the chain value with its integer square root.
func (c Uint[T]) Isqrt() Uint[T] {
	return c.then(Isqrt[T])
}

// NextMultipleOf rounds the chain value up to a multiple of b.
func (c Uint[T]) NextMultipleOf(b T) Uint[T] {
	return c.then(func(a T) (T, error) { return NextMultipleOf(a, b) })
}

// NextPowerOfTwo rounds the chain value up to a power of two.
func (c Uint[T]) NextPowerOfTwo() Uint[T] {
	return c.then(NextPowerOfTwo[T])
}

// ILog ends the chain with the base-base logarithm of its value.
func (c Uint[T]) ILog(base T) (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog(c.v, base)
}

// ILog2 ends the chain with the base 2 logarithm of its value.
func (c Uint[T]) ILog2() (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog2(c.v)
}

// ILog10 ends the chain with the base 10 logarithm of its value.
func (c Uint[T]) ILog10() (uint32, error) {
	if c.err != nil {
		return 0, c.err
	}

	return ILog10(c.v)
}

// Package result provides a two-state success/failure container used as the
// error channel for parameter operations.
//
// A Result holds exactly one of a success payload or an error payload. It is
// immutable after construction. The zero value holds neither and is only good
// for reporting a programming defect: both predicates return false on it and
// both unwraps panic.
package result

import "fmt"

type variant uint8

const (
	invalid variant = iota
	okVariant
	errVariant
)

// Unit is the success payload of operations that produce no value
type Unit struct{}

// Result holds either a success value of type T or an error value of type E
type Result[T, E any] struct {
	tag   variant
	value T
	err   E
}

// Ok constructs the success variant
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{tag: okVariant, value: value}
}

// Err constructs the error variant
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{tag: errVariant, err: err}
}

// IsOk reports whether r holds a success value
func (r Result[T, E]) IsOk() bool {
	return r.tag == okVariant
}

// IsErr reports whether r holds an error value
func (r Result[T, E]) IsErr() bool {
	return r.tag == errVariant
}

// Unwrap returns the success payload. Calling it on anything other than an Ok
// value is a contract violation and panics.
func (r Result[T, E]) Unwrap() T {
	switch r.tag {
	case okVariant:
		return r.value
	case errVariant:
		panic(fmt.Sprintf("result: Unwrap called on Err value: %v", r.err))
	default:
		panic("result: Unwrap called on uninitialized Result")
	}
}

// UnwrapErr returns the error payload. Calling it on anything other than an
// Err value is a contract violation and panics.
func (r Result[T, E]) UnwrapErr() E {
	switch r.tag {
	case errVariant:
		return r.err
	case okVariant:
		panic(fmt.Sprintf("result: UnwrapErr called on Ok value: %v", r.value))
	default:
		panic("result: UnwrapErr called on uninitialized Result")
	}
}

// UnwrapOr returns the success payload, or fallback when r is not Ok
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.tag == okVariant {
		return r.value
	}
	return fallback
}

// Get destructures r. ok is true only for the success variant.
func (r Result[T, E]) Get() (value T, err E, ok bool) {
	return r.value, r.err, r.tag == okVariant
}

// Match runs exactly one of the callbacks depending on the variant present.
// It panics on the zero value.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	switch r.tag {
	case okVariant:
		onOk(r.value)
	case errVariant:
		onErr(r.err)
	default:
		panic("result: Match called on uninitialized Result")
	}
}

func (r Result[T, E]) String() string {
	switch r.tag {
	case okVariant:
		return fmt.Sprintf("Ok(%v)", r.value)
	case errVariant:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result(<uninitialized>)"
	}
}

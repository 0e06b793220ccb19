package params

import (
	"errors"
	"fmt"
)

// Kind is the closed set of parameter error categories
type Kind int

const (
	// ConversionError: text cannot be read as the target type, or the requested
	// type disagrees with the key's declared type
	ConversionError Kind = iota + 1
	// KeyError: the key is not in the store
	KeyError
	// RangeError: a numeric value falls outside the key's bounds
	RangeError
)

// Sentinel errors, one per Kind
var (
	ErrConversion = errors.New("CONVERSION_ERROR")
	ErrKey        = errors.New("KEY_ERROR")
	ErrRange      = errors.New("RANGE_ERROR")
)

func (k Kind) String() string {
	switch k {
	case ConversionError:
		return "CONVERSION_ERROR"
	case KeyError:
		return "KEY_ERROR"
	case RangeError:
		return "RANGE_ERROR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// sentinel maps a kind to its package-level error
func (k Kind) sentinel() error {
	switch k {
	case ConversionError:
		return ErrConversion
	case KeyError:
		return ErrKey
	case RangeError:
		return ErrRange
	default:
		return nil
	}
}

// Error is the error payload carried by every failed parameter Result
type Error struct {
	Kind    Kind
	Message string
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap returns the sentinel for the error's kind, so errors.Is(err, ErrRange)
// matches any RangeError
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

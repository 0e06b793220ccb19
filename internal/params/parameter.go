package params

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sdr-params/internal/result"
)

// Type is the declared value type of a parameter
type Type int

const (
	TypeString Type = iota
	TypeDouble
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Parameter is one configuration entry. The value is always held in its
// canonical text encoding; min and max only apply to TypeDouble.
type Parameter struct {
	typ  Type
	text string
	min  float64
	max  float64
}

// NewStringParameter creates a text parameter
func NewStringParameter(value string) Parameter {
	return Parameter{typ: TypeString, text: value}
}

// NewDoubleParameter creates a numeric parameter. Bounds where either side is
// zero disable range checking.
func NewDoubleParameter(value, min, max float64) Parameter {
	return Parameter{typ: TypeDouble, text: encodeDouble(value), min: min, max: max}
}

// NewBoolParameter creates a boolean parameter
func NewBoolParameter(value bool) Parameter {
	return Parameter{typ: TypeBool, text: encodeBool(value)}
}

// Type returns the declared type
func (p Parameter) Type() Type {
	return p.typ
}

// Text returns the canonical text encoding of the value
func (p Parameter) Text() string {
	return p.text
}

// Bounds returns the configured numeric bounds
func (p Parameter) Bounds() (min, max float64) {
	return p.min, p.max
}

// RangeChecked reports whether sets are validated against the bounds. Only
// bounds with both ends non-zero are enforced; (0, 0) means unchecked.
func (p Parameter) RangeChecked() bool {
	return p.min != 0 && p.max != 0
}

// AsDouble parses the canonical text as a float. The whole text must be a
// valid literal.
func (p Parameter) AsDouble() result.Result[float64, *Error] {
	v, err := strconv.ParseFloat(p.text, 64)
	if err != nil {
		return result.Err[float64](newError(ConversionError, "double conversion error on value: %s", p.text))
	}
	return result.Ok[float64, *Error](v)
}

// AsBool accepts exactly "true", "True", "false" and "False"
func (p Parameter) AsBool() result.Result[bool, *Error] {
	switch p.text {
	case "true", "True":
		return result.Ok[bool, *Error](true)
	case "false", "False":
		return result.Ok[bool, *Error](false)
	default:
		return result.Err[bool](newError(ConversionError, "bool conversion error on value: %s", p.text))
	}
}

// inRange reports whether v is allowed by the bounds. NaN is never in range
// of a checked parameter.
func (p Parameter) inRange(v float64) bool {
	if !p.RangeChecked() {
		return true
	}
	if math.IsNaN(v) {
		return false
	}
	return v >= p.min && v <= p.max
}

func encodeDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func encodeBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

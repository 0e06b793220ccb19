// Package params implements the typed, range-validated parameter store of the
// radio.
//
// Every fallible operation returns a result.Result whose error payload is an
// *Error of kind ConversionError, KeyError or RangeError. The key set is fixed
// when the store is built and never changes afterwards.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must guard it, see package state.
package params

import (
	"io"
	"reflect"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/sdr-params/internal/result"
)

// Store is a fixed set of keyed parameters
type Store struct {
	params map[string]*Parameter
	log    logrus.FieldLogger
}

// Option configures a Store at construction
type Option func(*Store)

// WithLogger routes set outcomes to logger at debug level
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// New builds a store from DefaultTable
func New(opts ...Option) *Store {
	return NewWithTable(DefaultTable(), opts...).Unwrap()
}

// NewWithTable builds a store from table. A repeated key yields a KeyError; a
// definition whose text does not decode as its type yields a ConversionError.
func NewWithTable(table []Definition, opts ...Option) result.Result[*Store, *Error] {
	s := &Store{
		params: make(map[string]*Parameter, len(table)),
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, def := range table {
		if _, exists := s.params[def.Key]; exists {
			return result.Err[*Store](newError(KeyError, "duplicate key: %s", def.Key))
		}
		p := def.parameter()
		if err := checkEncoding(p); err != nil {
			return result.Err[*Store](err)
		}
		s.params[def.Key] = &p
	}

	return result.Ok[*Store, *Error](s)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// checkEncoding verifies that p's text decodes as its declared type
func checkEncoding(p Parameter) *Error {
	switch p.typ {
	case TypeDouble:
		if r := p.AsDouble(); r.IsErr() {
			return r.UnwrapErr()
		}
	case TypeBool:
		if r := p.AsBool(); r.IsErr() {
			return r.UnwrapErr()
		}
	case TypeString:
	default:
		return newError(ConversionError, "unknown datatype %v", p.typ)
	}
	return nil
}

// lookup returns the parameter for key, or a KeyError naming the key
func (s *Store) lookup(key string) (*Parameter, *Error) {
	p, ok := s.params[key]
	if !ok {
		return nil, newError(KeyError, "unknown key: %s", key)
	}
	return p, nil
}

func typeMismatch(key string, want Type) *Error {
	return newError(ConversionError, "key datatype is not a %v: %s", want, key)
}

func (s *Store) rejected(key string, err *Error) result.Result[result.Unit, *Error] {
	s.log.WithFields(logrus.Fields{"key": key, "kind": err.Kind.String()}).Debug(err.Message)
	return result.Err[result.Unit](err)
}

func (s *Store) accepted(key string, p *Parameter) result.Result[result.Unit, *Error] {
	s.log.WithFields(logrus.Fields{"key": key, "value": p.text}).Debug("parameter updated")
	return result.Ok[result.Unit, *Error](result.Unit{})
}

// SetString stores value under a text key
func (s *Store) SetString(key, value string) result.Result[result.Unit, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return s.rejected(key, err)
	}
	if p.typ != TypeString {
		return s.rejected(key, typeMismatch(key, TypeString))
	}

	p.text = value
	return s.accepted(key, p)
}

// SetDouble stores value under a numeric key after checking its bounds
func (s *Store) SetDouble(key string, value float64) result.Result[result.Unit, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return s.rejected(key, err)
	}
	if p.typ != TypeDouble {
		return s.rejected(key, typeMismatch(key, TypeDouble))
	}
	if !p.inRange(value) {
		return s.rejected(key, newError(RangeError,
			"value of %s is outside allowed value range for key %s", encodeDouble(value), key))
	}

	p.text = encodeDouble(value)
	return s.accepted(key, p)
}

// SetBool stores value under a boolean key
func (s *Store) SetBool(key string, value bool) result.Result[result.Unit, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return s.rejected(key, err)
	}
	if p.typ != TypeBool {
		return s.rejected(key, typeMismatch(key, TypeBool))
	}

	p.text = encodeBool(value)
	return s.accepted(key, p)
}

// Set dispatches on the dynamic type of value: string goes to SetString, bool
// to SetBool and any Go integer or float kind to SetDouble. Other types yield a
// ConversionError.
func (s *Store) Set(key string, value interface{}) result.Result[result.Unit, *Error] {
	switch v := value.(type) {
	case string:
		return s.SetString(key, v)
	case bool:
		return s.SetBool(key, v)
	}

	if f, ok := asFloat(value); ok {
		return s.SetDouble(key, f)
	}

	if _, err := s.lookup(key); err != nil {
		return s.rejected(key, err)
	}
	return s.rejected(key, newError(ConversionError, "unsupported value type %T for key: %s", value, key))
}

func asFloat(value interface{}) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// GetString returns the canonical text of any key regardless of its type
func (s *Store) GetString(key string) result.Result[string, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return result.Err[string](err)
	}
	return result.Ok[string, *Error](p.text)
}

// GetDouble returns the value of a numeric key
func (s *Store) GetDouble(key string) result.Result[float64, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return result.Err[float64](err)
	}
	if p.typ != TypeDouble {
		return result.Err[float64](typeMismatch(key, TypeDouble))
	}
	return p.AsDouble()
}

// GetBool returns the value of a boolean key. Keys of any other declared type
// yield a ConversionError.
func (s *Store) GetBool(key string) result.Result[bool, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return result.Err[bool](err)
	}
	if p.typ != TypeBool {
		return result.Err[bool](typeMismatch(key, TypeBool))
	}
	return p.AsBool()
}

// Describe returns a copy of key's definition with its current value
func (s *Store) Describe(key string) result.Result[Definition, *Error] {
	p, err := s.lookup(key)
	if err != nil {
		return result.Err[Definition](err)
	}
	return result.Ok[Definition, *Error](definitionOf(key, *p))
}

// Keys returns every key in sorted order
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.params))
	for k := range s.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys
func (s *Store) Len() int {
	return len(s.params)
}

package params

import (
	"errors"
	"math"
	"testing"
)

func TestAsBool(t *testing.T) {
	tests := []struct {
		text    string
		want    bool
		wantErr bool
	}{
		{text: "true", want: true},
		{text: "True", want: true},
		{text: "false", want: false},
		{text: "False", want: false},
		{text: "yes", wantErr: true},
		{text: "TRUE", wantErr: true},
		{text: " true", wantErr: true},
		{text: "1", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := NewStringParameter(tt.text).AsBool()
			if tt.wantErr {
				if !r.IsErr() {
					t.Fatalf("AsBool(%q) = %v, want ConversionError", tt.text, r)
				}
				if err := r.UnwrapErr(); err.Kind != ConversionError {
					t.Errorf("Expected ConversionError, got %v", err.Kind)
				}
				return
			}
			if got := r.Unwrap(); got != tt.want {
				t.Errorf("AsBool(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAsDouble(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{text: "446500000", want: 446500000},
		{text: "446500000.000000", want: 446500000},
		{text: "-2", want: -2},
		{text: "6e9", want: 6e9},
		{text: "Mooo", wantErr: true},
		{text: "12abc", wantErr: true},
		{text: "", wantErr: true},
		{text: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := NewStringParameter(tt.text).AsDouble()
			if tt.wantErr {
				if !r.IsErr() {
					t.Fatalf("AsDouble(%q) = %v, want ConversionError", tt.text, r)
				}
				err := r.UnwrapErr()
				if !errors.Is(err, ErrConversion) {
					t.Errorf("Expected ErrConversion, got %v", err)
				}
				if want := "double conversion error on value: " + tt.text; err.Message != want {
					t.Errorf("Message = %q, want %q", err.Message, want)
				}
				return
			}
			if got := r.Unwrap(); got != tt.want {
				t.Errorf("AsDouble(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDoubleEncodingRoundTrips(t *testing.T) {
	values := []float64{0, 1e6, 446500000, 0.1, -2, 59.999, 1e-9, math.MaxFloat64}

	for _, v := range values {
		p := NewDoubleParameter(v, 0, 0)
		got := p.AsDouble()
		if !got.IsOk() || got.Unwrap() != v {
			t.Errorf("Round trip of %v through %q = %v", v, p.Text(), got)
		}
	}
}

func TestRangeChecked(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		want     bool
	}{
		{name: "both set", min: -2, max: 60, want: true},
		{name: "both zero", min: 0, max: 0, want: false},
		{name: "zero min", min: 0, max: 39, want: false},
		{name: "zero max", min: -10, max: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDoubleParameter(1, tt.min, tt.max).RangeChecked(); got != tt.want {
				t.Errorf("RangeChecked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	p := NewDoubleParameter(0, -2, 60)

	for _, v := range []float64{-2, 0, 60} {
		if !p.inRange(v) {
			t.Errorf("Expected %v in [-2, 60]", v)
		}
	}
	for _, v := range []float64{-2.0001, 60.5, math.NaN(), math.Inf(1)} {
		if p.inRange(v) {
			t.Errorf("Expected %v outside [-2, 60]", v)
		}
	}

	unchecked := NewDoubleParameter(0, 0, 0)
	if !unchecked.inRange(math.NaN()) || !unchecked.inRange(-1e300) {
		t.Error("Unchecked parameter should accept any value")
	}
}

func TestBoolEncoding(t *testing.T) {
	if got := NewBoolParameter(true).Text(); got != "true" {
		t.Errorf("Text() = %q, want true", got)
	}
	if got := NewBoolParameter(false).Text(); got != "false" {
		t.Errorf("Text() = %q, want false", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		is   error
	}{
		{kind: ConversionError, want: "CONVERSION_ERROR", is: ErrConversion},
		{kind: KeyError, want: "KEY_ERROR", is: ErrKey},
		{kind: RangeError, want: "RANGE_ERROR", is: ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			err := &Error{Kind: tt.kind, Message: "m"}
			if !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
			if got := err.Error(); got != tt.want+": m" {
				t.Errorf("Error() = %q", got)
			}
		})
	}
}

package solution

import (
	"fmt"
	"math"
	"strings"
)

// Func maps an ordered coordinate sequence to the ordered values of a
// condition at those coordinates. It must return exactly len(coords) values.
type Func func(coords []float64) []float64

// Condition kinds accepted by ByName.
const (
	KindSine     = "sine"
	KindConstant = "constant"
	KindLinear   = "linear"
)

// Sine returns amplitude·sin(frequency·π·c).
func Sine(amplitude, frequency float64) Func {
	return func(coords []float64) []float64 {
		out := make([]float64, len(coords))
		for i, c := range coords {
			out[i] = amplitude * math.Sin(frequency*math.Pi*c)
		}
		return out
	}
}

// Constant returns value at every coordinate.
func Constant(value float64) Func {
	return func(coords []float64) []float64 {
		out := make([]float64, len(coords))
		for i := range out {
			out[i] = value
		}
		return out
	}
}

// Linear returns intercept + slope·c.
func Linear(intercept, slope float64) Func {
	return func(coords []float64) []float64 {
		out := make([]float64, len(coords))
		for i, c := range coords {
			out[i] = intercept + slope*c
		}
		return out
	}
}

// DefaultInitial is u(x, 0) = sin(πx).
func DefaultInitial() Func { return Sine(1, 1) }

// DefaultLeft is u(0, t) = 0.
func DefaultLeft() Func { return Constant(0) }

// DefaultRight is u(x_max, t) = 1.
func DefaultRight() Func { return Constant(1) }

// Spec describes a condition by name so it can come from a config file.
type Spec struct {
	Kind      string
	Amplitude float64 // sine
	Frequency float64 // sine
	Value     float64 // constant, linear intercept
	Slope     float64 // linear
}

// ByName resolves a Spec into a Func.
// Unknown kinds are rejected with an error wrapping grid.ErrConfiguration.
func ByName(s Spec) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case KindSine:
		return Sine(s.Amplitude, s.Frequency), nil
	case KindConstant:
		return Constant(s.Value), nil
	case KindLinear:
		return Linear(s.Value, s.Slope), nil
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownCondition, s.Kind)
	}
}

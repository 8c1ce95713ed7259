package fermi

import (
	"math"
	"sort"
	"strconv"
)

// Value is a calculation result: either a deterministic scalar or a
// distribution approximated by Monte Carlo samples.
type Value struct {
	x       float64
	samples []float64
}

// Scalar returns a deterministic Value.
func Scalar(x float64) Value {
	return Value{x: x}
}

// Distribution returns a Value backed by Monte Carlo samples. The slice is
// retained, not copied.
func Distribution(samples []float64) Value {
	return Value{samples: samples}
}

// IsDistribution reports whether the value carries samples rather than a
// single scalar.
func (v Value) IsDistribution() bool {
	return v.samples != nil
}

// Float64 returns the scalar value. For a distribution it returns the mean.
func (v Value) Float64() float64 {
	if v.samples == nil {
		return v.x
	}
	return v.Mean()
}

// Samples returns the underlying sample slice, nil for a scalar.
func (v Value) Samples() []float64 {
	return v.samples
}

// Mean returns the arithmetic mean of the samples, or the scalar itself.
func (v Value) Mean() float64 {
	if v.samples == nil {
		return v.x
	}
	sum := 0.0
	for _, s := range v.samples {
		sum += s
	}
	return sum / float64(len(v.samples))
}

// Percentile returns the p-th percentile of the samples, 0 <= p <= 100, by
// nearest rank on a sorted copy. For a scalar it returns the scalar.
func (v Value) Percentile(p float64) float64 {
	if v.samples == nil {
		return v.x
	}
	s := append([]float64(nil), v.samples...)
	sort.Float64s(s)
	return s[rank(p, len(s))]
}

// rank returns the nearest-rank index for percentile p among n sorted
// samples.
func rank(p float64, n int) int {
	k := int(math.Round(p / 100 * float64(n-1)))
	if k < 0 {
		return 0
	}
	if k > n-1 {
		return n - 1
	}
	return k
}

// combine applies op to two values under the broadcasting rule: two scalars
// stay scalar, a scalar spreads across every sample, and two distributions
// pair up index by index. Distributions of different sample counts, which
// can only come from caller-constructed values, are a SampleCountError.
func combine(op func(_, _ float64) float64, l, r Value) (Value, error) {
	switch {
	case l.samples == nil && r.samples == nil:
		return Scalar(op(l.x, r.x)), nil
	case l.samples == nil:
		out := make([]float64, len(r.samples))
		for i, b := range r.samples {
			out[i] = op(l.x, b)
		}
		return Distribution(out), nil
	case r.samples == nil:
		out := make([]float64, len(l.samples))
		for i, a := range l.samples {
			out[i] = op(a, r.x)
		}
		return Distribution(out), nil
	default:
		if len(l.samples) != len(r.samples) {
			return Value{}, &SampleCountError{Left: len(l.samples), Right: len(r.samples)}
		}
		out := make([]float64, len(l.samples))
		for i, a := range l.samples {
			out[i] = op(a, r.samples[i])
		}
		return Distribution(out), nil
	}
}

// SampleCountError is an error from an operation on two distributions with
// different sample counts.
type SampleCountError struct {
	// Left and Right are the operands' sample counts.
	Left, Right int
}

func (err *SampleCountError) Error() string {
	return "mismatched sample counts: " + strconv.Itoa(err.Left) + " and " + strconv.Itoa(err.Right)
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// div follows IEEE 754: a zero divisor yields an infinity or NaN.
func div(a, b float64) float64 { return a / b }

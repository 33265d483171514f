// Package linalg provides the dense numeric containers that the rest of the
// library computes over. Vectors and matrices are immutable: every operation
// returns a fresh value and the backing storage is never shared with the
// caller.
package linalg

import "math"

// Vector is an immutable one dimensional sequence of float64s.
type Vector struct {
	data []float64
}

// NewVector validates values and returns a vector over a copy of them. Any
// element that is NaN or ±Inf fails with an ElementError.
func NewVector(values []float64) (*Vector, error) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ElementError{Index: i, Value: v}
		}
	}
	return RawVector(values), nil
}

// RawVector skips validation. The values are still copied, so the vector
// remains immutable with respect to the caller's slice.
func RawVector(values []float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)
	return &Vector{data: data}
}

// Len returns the number of elements. It is fixed at construction.
func (v *Vector) Len() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, IndexError{Index: i, Len: len(v.data)}
	}
	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	retVal := make([]float64, len(v.data))
	copy(retVal, v.data)
	return retVal
}

// Sum returns Σ vᵢ.
func (v *Vector) Sum() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// L1Norm returns Σ |vᵢ|.
func (v *Vector) L1Norm() float64 {
	var sum float64
	for _, x := range v.data {
		sum += math.Abs(x)
	}
	return sum
}

// L2Norm returns √(Σ vᵢ²).
func (v *Vector) L2Norm() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns Σ vᵢ·wᵢ.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, DimensionError{Op: "Dot", A: len(v.data), B: len(w.data)}
	}
	var sum float64
	for i, x := range v.data {
		sum += x * w.data[i]
	}
	return sum, nil
}

// Outer returns the v.Len()×w.Len() matrix with entries vᵢ·wⱼ. The operands
// need not agree on length.
func (v *Vector) Outer(w *Vector) *Matrix {
	data := make([]float64, 0, len(v.data)*len(w.data))
	for _, x := range v.data {
		for _, y := range w.data {
			data = append(data, x*y)
		}
	}
	return &Matrix{rows: len(v.data), cols: len(w.data), data: data}
}

// Add returns the elementwise sum.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	return v.zip("Add", w, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	return v.zip("Sub", w, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise (Hadamard) product.
func (v *Vector) Mul(w *Vector) (*Vector, error) {
	return v.zip("Mul", w, func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient. Division by zero follows IEEE 754
// semantics and yields ±Inf or NaN rather than an error.
func (v *Vector) Div(w *Vector) (*Vector, error) {
	return v.zip("Div", w, func(a, b float64) float64 { return a / b })
}

// ScalarAdd returns a vector with s added to every element.
func (v *Vector) ScalarAdd(s float64) (*Vector, error) {
	return v.scalar("ScalarAdd", s, func(a float64) float64 { return a + s })
}

// ScalarSub returns a vector with s subtracted from every element.
func (v *Vector) ScalarSub(s float64) (*Vector, error) {
	return v.scalar("ScalarSub", s, func(a float64) float64 { return a - s })
}

// ScalarMul returns a vector with every element multiplied by s.
func (v *Vector) ScalarMul(s float64) (*Vector, error) {
	return v.scalar("ScalarMul", s, func(a float64) float64 { return a * s })
}

// ScalarDiv returns a vector with every element divided by s. A zero divisor
// follows IEEE 754 semantics.
func (v *Vector) ScalarDiv(s float64) (*Vector, error) {
	return v.scalar("ScalarDiv", s, func(a float64) float64 { return a / s })
}

// Exp returns a vector of e^vᵢ.
func (v *Vector) Exp() *Vector {
	data := make([]float64, len(v.data))
	for i, x := range v.data {
		data[i] = math.Exp(x)
	}
	return &Vector{data: data}
}

func (v *Vector) zip(op string, w *Vector, f func(a, b float64) float64) (*Vector, error) {
	if len(v.data) != len(w.data) {
		return nil, DimensionError{Op: op, A: len(v.data), B: len(w.data)}
	}
	data := make([]float64, len(v.data))
	for i, x := range v.data {
		data[i] = f(x, w.data[i])
	}
	return &Vector{data: data}, nil
}

func (v *Vector) scalar(op string, s float64, f func(a float64) float64) (*Vector, error) {
	if math.IsNaN(s) {
		return nil, ScalarError{Op: op, Value: s}
	}
	data := make([]float64, len(v.data))
	for i, x := range v.data {
		data[i] = f(x)
	}
	return &Vector{data: data}, nil
}

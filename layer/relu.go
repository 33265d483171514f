package layer

import (
	"fmt"

	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// ReLU rectifies activations. Forward caches the active-unit mask for the
// backward pass, following the same pending-state protocol as Dropout.
type ReLU struct {
	width int
	mask  *tensor.Dense
}

func NewReLU() *ReLU { return &ReLU{} }

func (r *ReLU) Init(fanIn int) (int, error) {
	r.width = fanIn
	return fanIn, nil
}

func (r *ReLU) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	in := input.Data().([]float32)

	maskData := make([]float32, len(in))
	out := make([]float32, len(in))
	for i, v := range in {
		if v > 0 {
			maskData[i] = 1
			out[i] = v
		}
	}
	r.mask = tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(maskData))
	return tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(out)), nil
}

func (r *ReLU) Infer(input *tensor.Dense) (*tensor.Dense, error) {
	in := input.Data().([]float32)
	out := make([]float32, len(in))
	for i, v := range in {
		if v > 0 {
			out[i] = v
		}
	}
	return tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(out)), nil
}

func (r *ReLU) Back(prev *Gradient, opt Optimizer) (*Gradient, error) {
	if r.mask == nil {
		return nil, NoPendingPassError{Layer: "relu"}
	}
	mask := r.mask
	r.mask = nil

	return Chain(prev, func(upstream *tensor.Dense) (*tensor.Dense, error) {
		up := upstream.Data().([]float32)
		m := mask.Data().([]float32)
		if len(up) != len(m) {
			return nil, ShapeError{Layer: "relu", Want: fmt.Sprintf("%v", mask.Shape()), Got: upstream.Shape()}
		}
		out := make([]float32, len(up))
		copy(out, up)
		vecf32.Mul(out, m)
		return tensor.New(tensor.WithShape(upstream.Shape().Clone()...), tensor.WithBacking(out)), nil
	}), nil
}

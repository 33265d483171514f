package layer

import (
	"fmt"

	"github.com/chewxy/math32"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Sigmoid squashes activations to (0, 1). Forward caches its output so the
// backward pass can reuse σ(x)·(1-σ(x)) without recomputing the exponential.
type Sigmoid struct {
	width int
	out   *tensor.Dense
}

func NewSigmoid() *Sigmoid { return &Sigmoid{} }

func (s *Sigmoid) Init(fanIn int) (int, error) {
	s.width = fanIn
	return fanIn, nil
}

func (s *Sigmoid) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	s.out = s.activate(input)
	return s.out, nil
}

func (s *Sigmoid) Infer(input *tensor.Dense) (*tensor.Dense, error) {
	return s.activate(input), nil
}

func (s *Sigmoid) Back(prev *Gradient, opt Optimizer) (*Gradient, error) {
	if s.out == nil {
		return nil, NoPendingPassError{Layer: "sigmoid"}
	}
	out := s.out
	s.out = nil

	return Chain(prev, func(upstream *tensor.Dense) (*tensor.Dense, error) {
		up := upstream.Data().([]float32)
		y := out.Data().([]float32)
		if len(up) != len(y) {
			return nil, ShapeError{Layer: "sigmoid", Want: fmt.Sprintf("%v", out.Shape()), Got: upstream.Shape()}
		}
		deriv := make([]float32, len(y))
		for i, v := range y {
			deriv[i] = v * (1 - v)
		}
		vecf32.Mul(deriv, up)
		return tensor.New(tensor.WithShape(upstream.Shape().Clone()...), tensor.WithBacking(deriv)), nil
	}), nil
}

func (s *Sigmoid) activate(input *tensor.Dense) *tensor.Dense {
	in := input.Data().([]float32)
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = 1 / (1 + math32.Exp(-v))
	}
	return tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(out))
}

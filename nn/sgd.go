package nn

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// SGD is plain stochastic gradient descent: param ← param - rate·grad.
type SGD struct {
	Rate float32
}

// NewSGD returns an SGD optimizer with the given learning rate.
func NewSGD(rate float32) *SGD { return &SGD{Rate: rate} }

func (s *SGD) Step(param, grad *tensor.Dense) error {
	p := param.Data().([]float32)
	g := grad.Data().([]float32)
	if len(p) != len(g) {
		return errors.Errorf("nn: sgd got a gradient of %d values for a parameter of %d", len(g), len(p))
	}

	step := make([]float32, len(g))
	copy(step, g)
	vecf32.Scale(step, -s.Rate)
	vecf32.Add(p, step)
	return nil
}

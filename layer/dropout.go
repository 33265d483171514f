package layer

import (
	"fmt"
	"time"

	rng "github.com/leesper/go_rng"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Dropout zeroes each activation with probability ratio during training,
// which stops co-adaptation between units. Inference passes through
// untouched. The mask is binary; no inverse-scale correction is applied on
// either pass, so outputs match the unscaled reference behaviour exactly.
// The scale factor 1/(1-ratio) is kept for layers composed on top of this
// one that opt into inverted dropout.
type Dropout struct {
	ratio float32
	scale float32
	width int

	// mask is drawn by Forward and consumed by exactly one Back call.
	mask *tensor.Dense
	rnd  *rng.UniformGenerator
}

// NewDropout returns a dropout layer seeded from the clock. Ratio must lie
// in (0, 1).
func NewDropout(ratio float32) (*Dropout, error) {
	return NewDropoutSeeded(ratio, time.Now().UnixNano())
}

// NewDropoutSeeded is NewDropout with a caller controlled seed, for
// reproducible masks.
func NewDropoutSeeded(ratio float32, seed int64) (*Dropout, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, RatioError{Ratio: ratio}
	}
	return &Dropout{
		ratio: ratio,
		scale: 1 / (1 - ratio),
		rnd:   rng.NewUniformGenerator(seed),
	}, nil
}

// Init records the width. Dropout does not change shape.
func (d *Dropout) Init(fanIn int) (int, error) {
	d.width = fanIn
	return fanIn, nil
}

// Forward draws a fresh keep/drop mask over the input's shape and returns
// mask ⊙ input. Any mask left unconsumed by a previous pass is overwritten.
func (d *Dropout) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	in := input.Data().([]float32)

	maskData := make([]float32, len(in))
	for i := range maskData {
		if d.rnd.Float32() > d.ratio {
			maskData[i] = 1
		}
	}
	d.mask = tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(maskData))

	out := make([]float32, len(in))
	copy(out, in)
	vecf32.Mul(out, maskData)
	return tensor.New(tensor.WithShape(input.Shape().Clone()...), tensor.WithBacking(out)), nil
}

// Infer is the identity: dropping at prediction time would shift the output
// distribution.
func (d *Dropout) Infer(input *tensor.Dense) (*tensor.Dense, error) {
	return input, nil
}

// Back consumes the pending mask and defers the gradient
// upstream ⊙ mask.
func (d *Dropout) Back(prev *Gradient, opt Optimizer) (*Gradient, error) {
	if d.mask == nil {
		return nil, NoPendingPassError{Layer: "dropout"}
	}
	mask := d.mask
	d.mask = nil

	return Chain(prev, func(upstream *tensor.Dense) (*tensor.Dense, error) {
		up := upstream.Data().([]float32)
		m := mask.Data().([]float32)
		if len(up) != len(m) {
			return nil, ShapeError{Layer: "dropout", Want: fmt.Sprintf("%v", mask.Shape()), Got: upstream.Shape()}
		}
		out := make([]float32, len(up))
		copy(out, up)
		vecf32.Mul(out, m)
		return tensor.New(tensor.WithShape(upstream.Shape().Clone()...), tensor.WithBacking(out)), nil
	}), nil
}

package layer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	rng "github.com/leesper/go_rng"
	"gorgonia.org/tensor"
)

// Dense is a fully connected layer: out = input·W + b. It is the layer with
// learnable parameters, so its backward pass is the one that actually drives
// the optimizer.
type Dense struct {
	units int
	w     *tensor.Dense // fanIn×units
	b     *tensor.Dense // units

	// input is captured by Forward and consumed by Back.
	input *tensor.Dense
	rnd   *rng.GaussianGenerator
}

// NewDense returns a fully connected layer with the given output width,
// seeded from the clock.
func NewDense(units int) (*Dense, error) {
	return NewDenseSeeded(units, time.Now().UnixNano())
}

// NewDenseSeeded is NewDense with a caller controlled seed for reproducible
// weight initialization.
func NewDenseSeeded(units int, seed int64) (*Dense, error) {
	if units < 1 {
		return nil, fmt.Errorf("layer: dense needs at least 1 unit, got %d", units)
	}
	return &Dense{units: units, rnd: rng.NewGaussianGenerator(seed)}, nil
}

// Init draws the weights from N(0, 1/√fanIn) and zeroes the biases.
func (d *Dense) Init(fanIn int) (int, error) {
	if fanIn < 1 {
		return 0, fmt.Errorf("layer: dense needs a positive fan in, got %d", fanIn)
	}

	std := float64(1 / math32.Sqrt(float32(fanIn)))
	wData := make([]float32, fanIn*d.units)
	for i := range wData {
		wData[i] = float32(d.rnd.Gaussian(0, std))
	}
	d.w = tensor.New(tensor.WithShape(fanIn, d.units), tensor.WithBacking(wData))
	d.b = tensor.New(tensor.WithShape(d.units), tensor.WithBacking(make([]float32, d.units)))
	return d.units, nil
}

func (d *Dense) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	d.input = input
	return d.affine(input)
}

func (d *Dense) Infer(input *tensor.Dense) (*tensor.Dense, error) {
	return d.affine(input)
}

// Back defers dX = dY·Wᵀ and, at evaluation time, steps the optimizer with
// dW = Xᵀ·dY and db = Σ over the batch of dY.
func (d *Dense) Back(prev *Gradient, opt Optimizer) (*Gradient, error) {
	if d.input == nil {
		return nil, NoPendingPassError{Layer: "dense"}
	}
	input := d.input
	d.input = nil

	return Chain(prev, func(upstream *tensor.Dense) (*tensor.Dense, error) {
		if upstream.Dims() != 2 || upstream.Shape()[1] != d.units {
			return nil, ShapeError{Layer: "dense", Want: fmt.Sprintf("a batch×%d gradient", d.units), Got: upstream.Shape()}
		}

		wT, err := tensor.Transpose(d.w)
		if err != nil {
			return nil, err
		}
		dx, err := tensor.MatMul(upstream, wT)
		if err != nil {
			return nil, err
		}

		if opt != nil {
			inT, err := tensor.Transpose(input)
			if err != nil {
				return nil, err
			}
			dw, err := tensor.MatMul(inT, upstream)
			if err != nil {
				return nil, err
			}
			db, err := tensor.Sum(upstream, 0)
			if err != nil {
				return nil, err
			}
			if err := opt.Step(d.w, dw.(*tensor.Dense)); err != nil {
				return nil, err
			}
			if err := opt.Step(d.b, db.(*tensor.Dense)); err != nil {
				return nil, err
			}
		}
		return dx.(*tensor.Dense), nil
	}), nil
}

// Weights exposes the parameter tensors, mainly for inspection in tests.
func (d *Dense) Weights() (w, b *tensor.Dense) { return d.w, d.b }

func (d *Dense) affine(input *tensor.Dense) (*tensor.Dense, error) {
	if input.Dims() != 2 || input.Shape()[1] != d.w.Shape()[0] {
		return nil, ShapeError{Layer: "dense", Want: fmt.Sprintf("a batch×%d matrix", d.w.Shape()[0]), Got: input.Shape()}
	}
	prod, err := tensor.MatMul(input, d.w)
	if err != nil {
		return nil, err
	}
	out := prod.(*tensor.Dense)

	bias := d.b.Data().([]float32)
	data := out.Data().([]float32)
	cols := out.Shape()[1]
	for i := range data {
		data[i] += bias[i%cols]
	}
	return out, nil
}

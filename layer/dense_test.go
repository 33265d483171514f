package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorgonia.org/tensor"
)

// recordingOpt captures the gradients it is asked to apply.
type recordingOpt struct {
	steps []*tensor.Dense
}

func (o *recordingOpt) Step(param, grad *tensor.Dense) error {
	o.steps = append(o.steps, grad)
	return nil
}

func newTestDense(t *testing.T, fanIn, units int) *Dense {
	d, err := NewDenseSeeded(units, 1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	fanOut, err := d.Init(fanIn)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, units, fanOut)
	return d
}

func TestDenseForward(t *testing.T) {
	d := newTestDense(t, 2, 2)

	// fixed parameters make the affine map checkable by hand
	copy(d.w.Data().([]float32), []float32{1, 2, 3, 4})
	copy(d.b.Data().([]float32), []float32{10, 20})

	in := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{1, 1}))
	out, err := d.Forward(in)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []float32{14, 26}, out.Data().([]float32))

	// infer computes the same map without capturing state
	d2 := newTestDense(t, 2, 2)
	copy(d2.w.Data().([]float32), []float32{1, 2, 3, 4})
	copy(d2.b.Data().([]float32), []float32{10, 20})
	out2, err := d2.Infer(in)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, out.Data(), out2.Data())
	if _, err := d2.Back(Lift(out2), nil); err == nil {
		t.Fatal("infer must not arm the backward pass")
	}
}

func TestDenseBack(t *testing.T) {
	d := newTestDense(t, 2, 2)
	copy(d.w.Data().([]float32), []float32{1, 2, 3, 4})
	copy(d.b.Data().([]float32), []float32{0, 0})

	in := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{1, 2}))
	if _, err := d.Forward(in); err != nil {
		t.Fatalf("%+v", err)
	}

	opt := &recordingOpt{}
	upstream := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{1, 1}))
	g, err := d.Back(Lift(upstream), opt)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	// nothing steps until the gradient chain is forced
	assert.Equal(t, 0, len(opt.steps))

	dx, err := g.Eval()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	// dX = dY·Wᵀ = [1·1+1·2, 1·3+1·4]
	assert.Equal(t, []float32{3, 7}, dx.Data().([]float32))

	// one step for W, one for b
	assert.Equal(t, 2, len(opt.steps))
	// dW = Xᵀ·dY
	assert.Equal(t, []float32{1, 1, 2, 2}, opt.steps[0].Data().([]float32))
	// db = column sums of dY
	assert.Equal(t, []float32{1, 1}, opt.steps[1].Data().([]float32))
}

func TestDenseShapeChecks(t *testing.T) {
	d := newTestDense(t, 3, 2)

	bad := tensor.New(tensor.WithShape(4), tensor.WithBacking(make([]float32, 4)))
	if _, err := d.Forward(bad); err == nil {
		t.Fatal("expected a shape error for a 1D input")
	}

	if _, err := NewDense(0); err == nil {
		t.Fatal("expected an error for a zero width layer")
	}
}

func TestSigmoid(t *testing.T) {
	s := NewSigmoid()
	s.Init(2)

	in := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{0, 0}))
	out, err := s.Forward(in)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.InDelta(t, 0.5, float64(out.Data().([]float32)[0]), 1e-6)

	upstream := tensor.New(tensor.WithShape(1, 2), tensor.WithBacking([]float32{1, 2}))
	g, err := s.Back(Lift(upstream), nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	dx, err := g.Eval()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	// σ'(0) = 0.25
	assert.InDelta(t, 0.25, float64(dx.Data().([]float32)[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(dx.Data().([]float32)[1]), 1e-6)

	if _, err := s.Back(Lift(upstream), nil); err == nil {
		t.Fatal("expected NoPendingPassError")
	}
}

func TestReLU(t *testing.T) {
	r := NewReLU()
	r.Init(4)

	in := tensor.New(tensor.WithShape(1, 4), tensor.WithBacking([]float32{-1, 2, -3, 4}))
	out, err := r.Forward(in)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []float32{0, 2, 0, 4}, out.Data().([]float32))

	upstream := tensor.New(tensor.WithShape(1, 4), tensor.WithBacking([]float32{1, 1, 1, 1}))
	g, err := r.Back(Lift(upstream), nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	dx, err := g.Eval()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []float32{0, 1, 0, 1}, dx.Data().([]float32))
}

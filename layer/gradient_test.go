package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorgonia.org/tensor"
)

func TestGradientLaziness(t *testing.T) {
	head := Lift(ones(1, 2))

	var calls int
	g := Chain(head, func(up *tensor.Dense) (*tensor.Dense, error) {
		calls++
		return up, nil
	})
	g = Chain(g, func(up *tensor.Dense) (*tensor.Dense, error) {
		calls++
		return up, nil
	})

	// nothing runs until the outermost gradient is forced
	assert.Equal(t, 0, calls)

	if _, err := g.Eval(); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, 2, calls)

	// memoized: a second force does not recompute
	if _, err := g.Eval(); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, 2, calls)
}

func TestGradientErrorPropagation(t *testing.T) {
	head := Lift(ones(1, 2))

	g := Chain(head, func(up *tensor.Dense) (*tensor.Dense, error) {
		return nil, ShapeError{Layer: "test", Want: "anything else", Got: up.Shape()}
	})
	var outerRan bool
	g = Chain(g, func(up *tensor.Dense) (*tensor.Dense, error) {
		outerRan = true
		return up, nil
	})

	_, err := g.Eval()
	if err == nil {
		t.Fatal("expected the upstream error to propagate")
	}
	assert.False(t, outerRan)

	// the error is memoized too
	_, err2 := g.Eval()
	assert.Equal(t, err, err2)
}

package layer

import "gorgonia.org/tensor"

// Gradient is a deferred gradient computation. Nothing is computed until
// Eval is called on the outermost gradient of a chain; evaluation then runs
// up the chain once and each link applies its layer's local transform to the
// upstream result. Results are memoized, so evaluating twice is allowed and
// returns the same tensor.
type Gradient struct {
	prev    *Gradient
	compute func(upstream *tensor.Dense) (*tensor.Dense, error)

	result *tensor.Dense
	err    error
	done   bool
}

// Lift wraps an already materialized tensor as the head of a gradient chain.
func Lift(t *tensor.Dense) *Gradient {
	return &Gradient{result: t, done: true}
}

// Chain returns a gradient that evaluates prev and applies compute to its
// result.
func Chain(prev *Gradient, compute func(upstream *tensor.Dense) (*tensor.Dense, error)) *Gradient {
	return &Gradient{prev: prev, compute: compute}
}

// Eval forces the computation.
func (g *Gradient) Eval() (*tensor.Dense, error) {
	if g.done {
		return g.result, g.err
	}
	g.done = true

	upstream, err := g.prev.Eval()
	if err != nil {
		g.err = err
		return nil, err
	}
	g.result, g.err = g.compute(upstream)
	return g.result, g.err
}

// Package layer provides the building blocks of feed forward networks. A
// layer takes part in two passes over a minibatch tensor: a forward pass that
// may capture per-pass state, and a backward pass that consumes that state
// and extends a chain of deferred gradient computations.
package layer

import "gorgonia.org/tensor"

// Float is the data type every layer computes in.
var Float = tensor.Float32

// Optimizer applies an update to a parameter tensor given its gradient.
// Layers without learnable parameters accept one for interface uniformity
// and ignore it.
type Optimizer interface {
	Step(param, grad *tensor.Dense) error
}

// Layer is one stage of a forward/backward pipeline over batch×width
// tensors.
type Layer interface {
	// Init fixes the layer's input width and returns its output width. It
	// must be called once before any pass.
	Init(fanIn int) (fanOut int, err error)

	// Forward runs a training pass. Layers with stochastic or cached state
	// record it here; every call overwrites whatever a previous call left
	// pending.
	Forward(input *tensor.Dense) (*tensor.Dense, error)

	// Infer runs a prediction pass: deterministic and free of side effects.
	Infer(input *tensor.Dense) (*tensor.Dense, error)

	// Back consumes the state of the pending forward pass and returns the
	// deferred gradient of the loss with respect to this layer's input.
	Back(prev *Gradient, opt Optimizer) (*Gradient, error)
}

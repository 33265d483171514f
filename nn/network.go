// Package nn composes layers into feed forward networks and provides the
// optimizers that train them.
package nn

import (
	"fmt"

	"github.com/gorgonia/golem/layer"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Network is an ordered pipeline of layers. The zero-th layer sees the raw
// input; widths are chained through Init at construction.
type Network struct {
	layers []layer.Layer
	fanIn  int
	fanOut int
}

// New wires the layers together, threading each layer's fan out into the
// next layer's fan in.
func New(fanIn int, layers ...layer.Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, errors.New("nn: a network needs at least one layer")
	}
	if fanIn < 1 {
		return nil, errors.Errorf("nn: fan in must be positive, got %d", fanIn)
	}

	width := fanIn
	for i, l := range layers {
		var err error
		if width, err = l.Init(width); err != nil {
			return nil, errors.Wrapf(err, "initializing layer %d (%T)", i, l)
		}
	}
	return &Network{layers: layers, fanIn: fanIn, fanOut: width}, nil
}

func (n *Network) FanIn() int { return n.fanIn }

func (n *Network) FanOut() int { return n.fanOut }

// Forward runs a training pass, arming every layer's backward state.
func (n *Network) Forward(input *tensor.Dense) (*tensor.Dense, error) {
	out := input
	for i, l := range n.layers {
		var err error
		if out, err = l.Forward(out); err != nil {
			return nil, errors.Wrapf(err, "forward pass at layer %d (%T)", i, l)
		}
	}
	return out, nil
}

// Infer runs a prediction pass. No state is captured.
func (n *Network) Infer(input *tensor.Dense) (*tensor.Dense, error) {
	out := input
	for i, l := range n.layers {
		var err error
		if out, err = l.Infer(out); err != nil {
			return nil, errors.Wrapf(err, "inference pass at layer %d (%T)", i, l)
		}
	}
	return out, nil
}

// Backward chains the deferred gradients from the output back to the input
// and forces the outermost one, which is what triggers every layer's local
// transform and parameter updates.
func (n *Network) Backward(outGrad *tensor.Dense, opt layer.Optimizer) (*tensor.Dense, error) {
	g := layer.Lift(outGrad)
	for i := len(n.layers) - 1; i >= 0; i-- {
		var err error
		if g, err = n.layers[i].Back(g, opt); err != nil {
			return nil, errors.Wrapf(err, "backward pass at layer %d (%T)", i, n.layers[i])
		}
	}
	retVal, err := g.Eval()
	if err != nil {
		return nil, errors.Wrap(err, "evaluating the gradient chain")
	}
	return retVal, nil
}

func (n *Network) String() string {
	return fmt.Sprintf("Network(%d→%d, %d layers)", n.fanIn, n.fanOut, len(n.layers))
}

package layer

import (
	"fmt"

	"gorgonia.org/tensor"
)

// RatioError is returned when a dropout ratio lies outside (0, 1).
type RatioError struct {
	Ratio float32
}

func (err RatioError) Error() string {
	return fmt.Sprintf("layer: dropout ratio must lie in (0, 1), got %v", err.Ratio)
}

// NoPendingPassError is returned when Back is called with no forward pass
// pending.
type NoPendingPassError struct {
	Layer string
}

func (err NoPendingPassError) Error() string {
	return fmt.Sprintf("layer: %s has no pending forward pass to back propagate through", err.Layer)
}

// ShapeError is returned when a tensor does not have the shape a layer
// expects.
type ShapeError struct {
	Layer string
	Want  string
	Got   tensor.Shape
}

func (err ShapeError) Error() string {
	return fmt.Sprintf("layer: %s expects %s, got shape %v", err.Layer, err.Want, err.Got)
}

package linalg

import "fmt"

// DimensionError is returned when two operands of an elementwise operation
// disagree on length.
type DimensionError struct {
	Op   string
	A, B int
}

func (err DimensionError) Error() string {
	return fmt.Sprintf("linalg: %s requires operands of equal length, got %d and %d", err.Op, err.A, err.B)
}

// IndexError is returned on out of range access.
type IndexError struct {
	Index int
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("linalg: index %d out of range for length %d", err.Index, err.Len)
}

// ElementError is returned by the validating constructors when an element is
// not a finite number.
type ElementError struct {
	Index int
	Value float64
}

func (err ElementError) Error() string {
	return fmt.Sprintf("linalg: element %d is not a finite number (%v)", err.Index, err.Value)
}

// ScalarError is returned by the scalar operations when given a scalar that is
// not a number.
type ScalarError struct {
	Op    string
	Value float64
}

func (err ScalarError) Error() string {
	return fmt.Sprintf("linalg: %s requires a numeric scalar, got %v", err.Op, err.Value)
}

// ShapeError is returned by the matrix constructor when the backing data does
// not fill the given shape.
type ShapeError struct {
	Rows, Cols int
	Len        int
}

func (err ShapeError) Error() string {
	return fmt.Sprintf("linalg: %d values cannot back a %d×%d matrix", err.Len, err.Rows, err.Cols)
}

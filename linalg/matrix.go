package linalg

import "math"

// Matrix is an immutable row-major dense matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix validates values and returns a rows×cols matrix over a copy of
// them, laid out row-major.
func NewMatrix(rows, cols int, values []float64) (*Matrix, error) {
	if len(values) != rows*cols {
		return nil, ShapeError{Rows: rows, Cols: cols, Len: len(values)}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ElementError{Index: i, Value: v}
		}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, IndexError{Index: i, Len: m.rows}
	}
	if j < 0 || j >= m.cols {
		return 0, IndexError{Index: j, Len: m.cols}
	}
	return m.data[i*m.cols+j], nil
}

// Row returns row i as a vector.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, IndexError{Index: i, Len: m.rows}
	}
	return RawVector(m.data[i*m.cols : (i+1)*m.cols]), nil
}

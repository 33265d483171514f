package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOuter(t *testing.T) {
	assert := assert.New(t)

	a := RawVector([]float64{1, 2, 3})
	b := RawVector([]float64{4, 5})

	m := a.Outer(b)
	rows, cols := m.Dims()
	assert.Equal(3, rows)
	assert.Equal(2, cols)

	want := [][]float64{
		{4, 5},
		{8, 10},
		{12, 15},
	}
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			assert.Equal(want[i][j], got)
		}
	}
}

func TestMatrixBounds(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := m.At(2, 0); err == nil {
		t.Fatal("expected out of range error")
	}
	if _, err := m.At(0, -1); err == nil {
		t.Fatal("expected out of range error")
	}

	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []float64{3, 4}, row.Values())

	_, err = NewMatrix(2, 3, []float64{1, 2, 3, 4})
	if _, ok := err.(ShapeError); !ok {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

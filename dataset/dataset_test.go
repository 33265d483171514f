package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func toy(n int) *Labeled {
	samples := make([][]float64, n)
	labels := make([]interface{}, n)
	for i := range samples {
		samples[i] = []float64{float64(i)}
		labels[i] = i
	}
	retVal, _ := NewLabeled(samples, labels)
	return retVal
}

func TestNewLabeled(t *testing.T) {
	_, err := NewLabeled(make([][]float64, 3), make([]interface{}, 2))
	if _, ok := err.(SizeError); !ok {
		t.Fatalf("expected SizeError, got %v", err)
	}
}

func TestFold(t *testing.T) {
	assert := assert.New(t)

	folds := toy(11).Fold(3)
	assert.Equal(3, len(folds))

	var total int
	for _, f := range folds {
		total += f.Len()
	}
	assert.Equal(11, total)
	assert.Equal(4, folds[0].Len()) // remainder lands in the leading folds
	assert.Equal(4, folds[1].Len())
	assert.Equal(3, folds[2].Len())
}

func TestFoldDegenerate(t *testing.T) {
	assert := assert.New(t)

	empty, err := NewLabeled(nil, nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	folds := empty.Fold(5)
	assert.Len(folds, 1)
	assert.Equal(0, folds[0].Len())

	one := toy(1)
	folds = one.Fold(5)
	assert.Len(folds, 1)
	assert.Equal(1, folds[0].Len())
}

func TestMergeAndSplit(t *testing.T) {
	assert := assert.New(t)

	d := toy(10)
	folds := d.Fold(5)
	merged := folds[0].Merge(folds[1:]...)
	assert.Equal(10, merged.Len())

	left, right := d.Split(0.8)
	assert.Equal(8, left.Len())
	assert.Equal(2, right.Len())
}

func TestRandomize(t *testing.T) {
	d := toy(100)
	shuffled := d.Randomize(42)

	assert.Equal(t, 100, shuffled.Len())
	// the original order is untouched
	assert.Equal(t, 0, d.Labels()[0])

	seen := make(map[interface{}]bool)
	for _, l := range shuffled.Labels() {
		seen[l] = true
	}
	assert.Equal(t, 100, len(seen))

	// same seed, same permutation
	again := d.Randomize(42)
	assert.Equal(t, shuffled.Labels(), again.Labels())
}

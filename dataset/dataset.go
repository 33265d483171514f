// Package dataset provides the in-memory sample containers consumed by
// estimators and validators. A dataset is either labeled (samples paired with
// ground truth) or unlabeled.
package dataset

import (
	"fmt"
	"math/rand"
)

// DataType tags the kind of values an estimator emits or a metric scores.
type DataType int

const (
	// Categorical values are discrete class labels.
	Categorical DataType = iota
	// Continuous values are real numbers.
	Continuous
)

func (t DataType) String() string {
	switch t {
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// Dataset is the read side shared by the labeled and unlabeled variants.
type Dataset interface {
	Samples() [][]float64
	Len() int
}

// SizeError is returned when samples and labels disagree on count.
type SizeError struct {
	Samples, Labels int
}

func (err SizeError) Error() string {
	return fmt.Sprintf("dataset: %d samples cannot pair with %d labels", err.Samples, err.Labels)
}

// Unlabeled is a bare bag of samples.
type Unlabeled struct {
	samples [][]float64
}

// NewUnlabeled returns an unlabeled dataset over samples.
func NewUnlabeled(samples [][]float64) *Unlabeled {
	return &Unlabeled{samples: samples}
}

func (d *Unlabeled) Samples() [][]float64 { return d.samples }

func (d *Unlabeled) Len() int { return len(d.samples) }

// Labeled pairs samples with their ground truth labels.
type Labeled struct {
	samples [][]float64
	labels  []interface{}
}

// NewLabeled returns a labeled dataset. The counts must agree.
func NewLabeled(samples [][]float64, labels []interface{}) (*Labeled, error) {
	if len(samples) != len(labels) {
		return nil, SizeError{Samples: len(samples), Labels: len(labels)}
	}
	return &Labeled{samples: samples, labels: labels}, nil
}

func (d *Labeled) Samples() [][]float64 { return d.samples }

func (d *Labeled) Labels() []interface{} { return d.labels }

func (d *Labeled) Len() int { return len(d.samples) }

// Randomize returns a copy of the dataset with rows shuffled by the given
// seed. The receiver is left untouched.
func (d *Labeled) Randomize(seed int64) *Labeled {
	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(len(d.samples))

	samples := make([][]float64, len(d.samples))
	labels := make([]interface{}, len(d.labels))
	for i, j := range perm {
		samples[i] = d.samples[j]
		labels[i] = d.labels[j]
	}
	retVal, _ := NewLabeled(samples, labels)
	return retVal
}

// Fold partitions the dataset into k folds. The remainder rows are spread
// over the leading folds so no row is dropped. k is clamped to [1, Len()];
// an empty dataset yields a single empty fold.
func (d *Labeled) Fold(k int) []*Labeled {
	if len(d.samples) == 0 {
		return []*Labeled{d}
	}
	if k < 1 {
		k = 1
	}
	if k > len(d.samples) {
		k = len(d.samples)
	}

	size := len(d.samples) / k
	rem := len(d.samples) % k

	retVal := make([]*Labeled, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		end := start + size
		if i < rem {
			end++
		}
		fold, _ := NewLabeled(d.samples[start:end], d.labels[start:end])
		retVal = append(retVal, fold)
		start = end
	}
	return retVal
}

// Merge concatenates the receiver with the given datasets into a new one.
func (d *Labeled) Merge(others ...*Labeled) *Labeled {
	n := len(d.samples)
	for _, o := range others {
		n += len(o.samples)
	}

	samples := make([][]float64, 0, n)
	labels := make([]interface{}, 0, n)
	samples = append(samples, d.samples...)
	labels = append(labels, d.labels...)
	for _, o := range others {
		samples = append(samples, o.samples...)
		labels = append(labels, o.labels...)
	}
	retVal, _ := NewLabeled(samples, labels)
	return retVal
}

// Split cuts the dataset in two at ratio, the left part holding
// ratio·Len() rows.
func (d *Labeled) Split(ratio float64) (left, right *Labeled) {
	n := int(float64(len(d.samples)) * ratio)
	if n < 0 {
		n = 0
	}
	if n > len(d.samples) {
		n = len(d.samples)
	}
	left, _ = NewLabeled(d.samples[:n], d.labels[:n])
	right, _ = NewLabeled(d.samples[n:], d.labels[n:])
	return left, right
}

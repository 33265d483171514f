package golem

import "github.com/gorgonia/golem/dataset"

// Dummy is a baseline classifier that always predicts the most frequent
// training label. Useful as a sanity floor for anything smarter.
type Dummy struct {
	mode    interface{}
	trained bool
}

func NewDummy() *Dummy { return &Dummy{} }

func (d *Dummy) Type() EstimatorType { return Classifier }

func (d *Dummy) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (d *Dummy) Trained() bool { return d.trained }

func (d *Dummy) Train(ds *dataset.Labeled) error {
	counts := make(map[interface{}]int)
	var best int
	for _, l := range ds.Labels() {
		counts[l]++
		if counts[l] > best {
			best = counts[l]
			d.mode = l
		}
	}
	d.trained = true
	return nil
}

func (d *Dummy) Predict(ds dataset.Dataset) ([]interface{}, error) {
	if !d.trained {
		return nil, UntrainedError{Op: "Dummy.Predict"}
	}
	retVal := make([]interface{}, ds.Len())
	for i := range retVal {
		retVal[i] = d.mode
	}
	return retVal, nil
}

// Package knn implements a k nearest neighbours classifier over continuous
// features. Training memorizes the dataset; prediction votes among the k
// closest training samples by Euclidean distance.
package knn

import (
	"fmt"
	"sort"

	"github.com/gorgonia/golem"
	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/linalg"
	"github.com/pkg/errors"
)

// Classifier is a lazy learner: all work happens at prediction time.
type Classifier struct {
	k        int
	weighted bool

	samples []*linalg.Vector
	labels  []interface{}
	trained bool
}

// New returns a k nearest neighbours classifier. When weighted, votes are
// scaled by inverse distance.
func New(k int, weighted bool) (*Classifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("knn: needs at least 1 neighbour, got k=%d", k)
	}
	return &Classifier{k: k, weighted: weighted}, nil
}

func (c *Classifier) Type() golem.EstimatorType { return golem.Classifier }

func (c *Classifier) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (c *Classifier) Trained() bool { return c.trained }

// Train memorizes the dataset. Samples are validated on the way in.
func (c *Classifier) Train(ds *dataset.Labeled) error {
	if ds.Len() == 0 {
		return errors.New("knn: cannot train on an empty dataset")
	}

	samples := make([]*linalg.Vector, ds.Len())
	for i, s := range ds.Samples() {
		v, err := linalg.NewVector(s)
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		samples[i] = v
	}
	c.samples = samples
	c.labels = ds.Labels()
	c.trained = true
	return nil
}

func (c *Classifier) Predict(ds dataset.Dataset) ([]interface{}, error) {
	if !c.trained {
		return nil, golem.UntrainedError{Op: "knn.Predict"}
	}

	retVal := make([]interface{}, ds.Len())
	for i, s := range ds.Samples() {
		votes, order, err := c.vote(s)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}

		// ties go to the class seen among the nearest neighbours first
		var best interface{}
		bestWeight := -1.0
		for _, l := range order {
			if votes[l] > bestWeight {
				bestWeight = votes[l]
				best = l
			}
		}
		retVal[i] = best
	}
	return retVal, nil
}

// Proba returns the normalized vote shares per class.
func (c *Classifier) Proba(ds dataset.Dataset) ([]map[interface{}]float64, error) {
	if !c.trained {
		return nil, golem.UntrainedError{Op: "knn.Proba"}
	}

	retVal := make([]map[interface{}]float64, ds.Len())
	for i, s := range ds.Samples() {
		votes, _, err := c.vote(s)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		var total float64
		for _, w := range votes {
			total += w
		}
		for l := range votes {
			votes[l] /= total
		}
		retVal[i] = votes
	}
	return retVal, nil
}

// vote returns the accumulated vote weight per class among the k nearest
// neighbours, plus the classes in nearest-first order.
func (c *Classifier) vote(sample []float64) (votes map[interface{}]float64, order []interface{}, err error) {
	q, err := linalg.NewVector(sample)
	if err != nil {
		return nil, nil, err
	}

	dists := make([]float64, len(c.samples))
	for i, s := range c.samples {
		diff, err := q.Sub(s)
		if err != nil {
			return nil, nil, err
		}
		dists[i] = diff.L2Norm()
	}

	idx := make([]int, len(dists))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return dists[idx[a]] < dists[idx[b]] })

	k := c.k
	if k > len(idx) {
		k = len(idx)
	}

	votes = make(map[interface{}]float64)
	for _, i := range idx[:k] {
		l := c.labels[i]
		if _, ok := votes[l]; !ok {
			order = append(order, l)
		}
		if c.weighted {
			votes[l] += 1 / (dists[i] + 1e-8)
		} else {
			votes[l]++
		}
	}
	return votes, order, nil
}

package metrics

import (
	"math"

	"github.com/gorgonia/golem/dataset"
)

// RSquared is the coefficient of determination: the proportion of label
// variance explained by the predictions. A constant-label dataset has no
// variance to explain and scores NaN by IEEE semantics; callers that care
// should not feed one in.
type RSquared struct{}

func NewRSquared() RSquared { return RSquared{} }

func (RSquared) Range() (min, max float64) { return math.Inf(-1), 1 }

func (RSquared) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Continuous}
}

func (RSquared) Score(predictions, labels []interface{}) (float64, error) {
	if err := checkLengths("r squared", predictions, labels); err != nil {
		return 0, err
	}

	ys := make([]float64, len(labels))
	var mean float64
	for i, l := range labels {
		y, ok := l.(float64)
		if !ok {
			return 0, ValueError{Metric: "r squared", Value: l}
		}
		ys[i] = y
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i, p := range predictions {
		yHat, ok := p.(float64)
		if !ok {
			return 0, ValueError{Metric: "r squared", Value: p}
		}
		ssRes += (ys[i] - yHat) * (ys[i] - yHat)
		ssTot += (ys[i] - mean) * (ys[i] - mean)
	}
	return 1 - ssRes/ssTot, nil
}

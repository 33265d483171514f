package metrics

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
)

// FBeta is the weighted harmonic mean of precision and recall, macro averaged
// over classes. Beta weighs recall; beta = 1 is the familiar F1.
type FBeta struct {
	beta2 float64
}

// NewFBeta returns an FBeta metric. Beta must be non-negative.
func NewFBeta(beta float64) (*FBeta, error) {
	if beta < 0 {
		return nil, fmt.Errorf("metrics: fbeta needs beta >= 0, got %v", beta)
	}
	return &FBeta{beta2: beta * beta}, nil
}

// NewF1 returns FBeta with beta = 1.
func NewF1() *FBeta { return &FBeta{beta2: 1} }

func (*FBeta) Range() (min, max float64) { return 0, 1 }

func (*FBeta) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (m *FBeta) Score(predictions, labels []interface{}) (float64, error) {
	if err := checkLengths("fbeta", predictions, labels); err != nil {
		return 0, err
	}

	classes, counts := confusions(predictions, labels)

	var sum float64
	for _, c := range classes {
		cm := counts[c]

		var precision, recall float64
		if cm.tp+cm.fp > 0 {
			precision = cm.tp / (cm.tp + cm.fp)
		}
		if cm.tp+cm.fn > 0 {
			recall = cm.tp / (cm.tp + cm.fn)
		}

		denom := m.beta2*precision + recall
		if denom > 0 {
			sum += (1 + m.beta2) * precision * recall / denom
		}
	}
	return sum / float64(len(classes)), nil
}

package metrics

import "github.com/gorgonia/golem/dataset"

// Accuracy is the fraction of predictions that equal their label.
type Accuracy struct{}

func NewAccuracy() Accuracy { return Accuracy{} }

func (Accuracy) Range() (min, max float64) { return 0, 1 }

func (Accuracy) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (Accuracy) Score(predictions, labels []interface{}) (float64, error) {
	if err := checkLengths("accuracy", predictions, labels); err != nil {
		return 0, err
	}
	var hits float64
	for i, p := range predictions {
		if p == labels[i] {
			hits++
		}
	}
	return hits / float64(len(predictions)), nil
}

package metrics

import "github.com/gorgonia/golem/dataset"

// Informedness (Youden's J) is sensitivity + specificity - 1, macro averaged
// over classes. Zero means the predictions are no better than chance.
type Informedness struct{}

func NewInformedness() Informedness { return Informedness{} }

func (Informedness) Range() (min, max float64) { return -1, 1 }

func (Informedness) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (Informedness) Score(predictions, labels []interface{}) (float64, error) {
	if err := checkLengths("informedness", predictions, labels); err != nil {
		return 0, err
	}

	classes, counts := confusions(predictions, labels)

	var sum float64
	for _, c := range classes {
		cm := counts[c]

		var sensitivity, specificity float64
		if cm.tp+cm.fn > 0 {
			sensitivity = cm.tp / (cm.tp + cm.fn)
		}
		if cm.tn+cm.fp > 0 {
			specificity = cm.tn / (cm.tn + cm.fp)
		}
		sum += sensitivity + specificity - 1
	}
	return sum / float64(len(classes)), nil
}

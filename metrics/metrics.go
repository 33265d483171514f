// Package metrics provides validation scores. A metric scores a slice of
// predictions against ground truth labels; higher is always better, so
// anything minimized (a loss) does not belong here.
package metrics

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
)

// Metric scores predictions against ground truth.
type Metric interface {
	// Range returns the (min, max) the score can take.
	Range() (min, max float64)

	// Compatibility returns the data types of predictions this metric can
	// score.
	Compatibility() []dataset.DataType

	// Score computes the metric. Predictions and labels are index aligned.
	Score(predictions, labels []interface{}) (float64, error)
}

// LengthError is returned when predictions and labels disagree on count, or
// when both are empty.
type LengthError struct {
	Metric              string
	Predictions, Labels int
}

func (err LengthError) Error() string {
	if err.Predictions == 0 && err.Labels == 0 {
		return fmt.Sprintf("metrics: %s needs at least one prediction", err.Metric)
	}
	return fmt.Sprintf("metrics: %s got %d predictions for %d labels", err.Metric, err.Predictions, err.Labels)
}

// ValueError is returned when a prediction or label is not of the type the
// metric scores.
type ValueError struct {
	Metric string
	Value  interface{}
}

func (err ValueError) Error() string {
	return fmt.Sprintf("metrics: %s cannot score %T value %v", err.Metric, err.Value, err.Value)
}

func checkLengths(metric string, predictions, labels []interface{}) error {
	if len(predictions) != len(labels) || len(predictions) == 0 {
		return LengthError{Metric: metric, Predictions: len(predictions), Labels: len(labels)}
	}
	return nil
}

// confusion holds the per class binary confusion counts of a multiclass
// problem.
type confusion struct {
	tp, fp, tn, fn float64
}

// confusions computes one binary confusion per class seen in either slice,
// keyed in first-seen order.
func confusions(predictions, labels []interface{}) (classes []interface{}, counts map[interface{}]*confusion) {
	counts = make(map[interface{}]*confusion)
	for _, s := range [2][]interface{}{labels, predictions} {
		for _, c := range s {
			if _, ok := counts[c]; !ok {
				counts[c] = &confusion{}
				classes = append(classes, c)
			}
		}
	}

	for i, p := range predictions {
		l := labels[i]
		for _, c := range classes {
			m := counts[c]
			switch {
			case p == c && l == c:
				m.tp++
			case p == c && l != c:
				m.fp++
			case p != c && l == c:
				m.fn++
			default:
				m.tn++
			}
		}
	}
	return classes, counts
}

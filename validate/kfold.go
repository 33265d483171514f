package validate

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/metrics"
	"github.com/pkg/errors"
)

// KFold partitions the dataset into k folds and reports the mean score over k
// train-on-the-rest, test-on-the-fold rounds. Folds follow the dataset's row
// order; shuffle with Labeled.Randomize first if that order carries signal.
type KFold struct {
	k int
}

// NewKFold returns a k-fold cross validator. k must be at least 2.
func NewKFold(k int) (*KFold, error) {
	if k < 2 {
		return nil, ConfigError{Validator: "k fold", Msg: fmt.Sprintf("needs k >= 2, got %d", k)}
	}
	return &KFold{k: k}, nil
}

func (v *KFold) Test(l Learner, ds *dataset.Labeled, m metrics.Metric) (float64, error) {
	if ds.Len() < v.k {
		return 0, ConfigError{Validator: "k fold", Msg: fmt.Sprintf("needs at least %d rows to cut %d folds, got %d", v.k, v.k, ds.Len())}
	}
	folds := ds.Fold(v.k)

	var sum float64
	for i, test := range folds {
		rest := make([]*dataset.Labeled, 0, len(folds)-1)
		for j, f := range folds {
			if j != i {
				rest = append(rest, f)
			}
		}
		train := rest[0].Merge(rest[1:]...)

		if err := l.Train(train); err != nil {
			return 0, errors.Wrapf(err, "fold %d: training failed", i)
		}
		predictions, err := l.Predict(test)
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d: prediction failed", i)
		}
		score, err := m.Score(predictions, test.Labels())
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d: scoring failed", i)
		}
		sum += score
	}
	return sum / float64(len(folds)), nil
}

package validate

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/metrics"
	"github.com/pkg/errors"
)

// HoldOut trains on the leading ratio of the dataset and scores on the rest.
// Cheaper than KFold, higher variance.
type HoldOut struct {
	ratio float64
}

// NewHoldOut returns a hold out validator. Ratio is the training share and
// must lie in (0, 1).
func NewHoldOut(ratio float64) (*HoldOut, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, ConfigError{Validator: "hold out", Msg: fmt.Sprintf("needs a ratio in (0, 1), got %v", ratio)}
	}
	return &HoldOut{ratio: ratio}, nil
}

func (v *HoldOut) Test(l Learner, ds *dataset.Labeled, m metrics.Metric) (float64, error) {
	train, test := ds.Split(v.ratio)
	if test.Len() == 0 || train.Len() == 0 {
		return 0, ConfigError{Validator: "hold out", Msg: fmt.Sprintf("ratio %v leaves an empty split on %d rows", v.ratio, ds.Len())}
	}

	if err := l.Train(train); err != nil {
		return 0, errors.Wrap(err, "training failed")
	}
	predictions, err := l.Predict(test)
	if err != nil {
		return 0, errors.Wrap(err, "prediction failed")
	}
	return m.Score(predictions, test.Labels())
}

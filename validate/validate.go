// Package validate estimates the generalization performance of an estimator
// on data it was not trained on.
package validate

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/metrics"
)

// Learner is the slice of the estimator contract a validator needs. Any
// golem.Estimator satisfies it.
type Learner interface {
	Train(ds *dataset.Labeled) error
	Predict(ds dataset.Dataset) ([]interface{}, error)
}

// Validator scores how well a learner generalizes on the given dataset. A
// validator is free to leave the learner trained on any subset of the data it
// was handed.
type Validator interface {
	Test(l Learner, ds *dataset.Labeled, m metrics.Metric) (float64, error)
}

// ConfigError is returned when a validator is constructed with parameters it
// cannot work with.
type ConfigError struct {
	Validator string
	Msg       string
}

func (err ConfigError) Error() string {
	return fmt.Sprintf("validate: %s %s", err.Validator, err.Msg)
}

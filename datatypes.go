package golem

import (
	"fmt"

	"github.com/gorgonia/golem/dataset"
)

// EstimatorType is the closed set of learner kinds the library knows about.
type EstimatorType int

const (
	Classifier EstimatorType = iota
	Regressor
	Clusterer
	AnomalyDetector
	Other
)

func (t EstimatorType) String() string {
	switch t {
	case Classifier:
		return "classifier"
	case Regressor:
		return "regressor"
	case Clusterer:
		return "clusterer"
	case AnomalyDetector:
		return "anomaly detector"
	case Other:
		return "other"
	}
	return fmt.Sprintf("EstimatorType(%d)", int(t))
}

// Estimator is anything that can be trained on a labeled dataset and asked
// for predictions.
type Estimator interface {
	Type() EstimatorType

	// Compatibility returns the data types of the predictions the estimator
	// emits.
	Compatibility() []dataset.DataType

	Trained() bool
	Train(ds *dataset.Labeled) error
	Predict(ds dataset.Dataset) ([]interface{}, error)
}

// Probabilistic is an optional estimator capability: a probability per class
// for every prediction.
type Probabilistic interface {
	Estimator
	Proba(ds dataset.Dataset) ([]map[interface{}]float64, error)
}

// Progress describes one scored hyperparameter combination.
type Progress struct {
	Index, Total int
	Params       []interface{}
	Score        float64

	BestScore  float64
	BestParams []interface{}
}

// ProgressEncoder consumes search progress as it is produced.
//
// An example ProgressEncoder is the GifEncoder. Another example would be a
// logger.
type ProgressEncoder interface {
	Encode(p Progress) error
	Flush() error
}

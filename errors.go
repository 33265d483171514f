package golem

import "fmt"

// BlueprintError is returned when a grid search is configured with a
// blueprint or grid that cannot produce trainable candidates.
type BlueprintError struct {
	Msg string
}

func (err BlueprintError) Error() string {
	return "golem: " + err.Msg
}

// IncompatibleMetricError is returned when a supplied metric cannot score
// what the base estimator predicts.
type IncompatibleMetricError struct {
	Metric    string
	Estimator EstimatorType
}

func (err IncompatibleMetricError) Error() string {
	return fmt.Sprintf("golem: metric %s cannot score the predictions of a %v", err.Metric, err.Estimator)
}

// UnlabeledError is returned when training is attempted on a dataset without
// labels.
type UnlabeledError struct {
	Op string
}

func (err UnlabeledError) Error() string {
	return fmt.Sprintf("golem: %s requires a labeled dataset", err.Op)
}

// UnsupportedError is returned when a delegated capability is implemented
// neither by the wrapper nor by the estimator it holds.
type UnsupportedError struct {
	Method    string
	Estimator string
}

func (err UnsupportedError) Error() string {
	return fmt.Sprintf("golem: %s is not supported by %s", err.Method, err.Estimator)
}

// UntrainedError is returned when predictions are requested before any
// training has happened.
type UntrainedError struct {
	Op string
}

func (err UntrainedError) Error() string {
	return fmt.Sprintf("golem: %s called before training", err.Op)
}

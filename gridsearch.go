// Package golem is a general purpose machine learning library. The root
// package holds the estimator contracts and the meta estimators that compose
// them; the numeric substrate lives in linalg, the neural network stack in
// layer and nn.
package golem

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/metrics"
	"github.com/gorgonia/golem/validate"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Blueprint describes how candidate estimators are constructed. It replaces
// runtime constructor introspection with an explicit schema: the ordered
// parameter names and a factory taking arguments in that order.
type Blueprint struct {
	Type          EstimatorType
	Compatibility []dataset.DataType

	// Params names the factory's parameters, in order.
	Params []string

	// New builds an estimator from len(Params) or fewer arguments.
	New func(args ...interface{}) (Estimator, error)
}

// Grid maps constructor parameter positions to their candidate values. Axis i
// feeds parameter i of the blueprint.
type Grid [][]interface{}

// Config tunes a GridSearch. The zero value selects a metric fitting the
// estimator type, 5-fold cross validation, sequential evaluation and
// retraining of the winner on the full dataset.
type Config struct {
	Metric    metrics.Metric
	Validator validate.Validator

	// NoRetrain keeps the winner as the validator left it instead of
	// retraining it on the full dataset.
	NoRetrain bool

	// Workers > 1 evaluates combinations concurrently. Candidates are fully
	// isolated and ties are still broken by generation order.
	Workers int

	Logger  *log.Logger
	Encoder ProgressEncoder
}

// Best is the winning combination of a search.
type Best struct {
	Score  float64
	Params []interface{}
}

// GridSearch trains one candidate estimator per combination of a
// hyperparameter grid, scores each with a validator and metric, and then
// stands in for the best candidate: it implements the full Estimator contract
// by delegation.
type GridSearch struct {
	blueprint Blueprint
	grid      Grid
	metric    metrics.Metric
	validator validate.Validator
	retrain   bool
	workers   int

	combinations [][]interface{}
	scores       []float64
	best         *Best
	held         Estimator

	logger *log.Logger
	enc    ProgressEncoder
}

// NewGridSearch configures a search over the blueprint's parameters. The grid
// may cover a prefix of the parameters; it must not be wider than the
// blueprint.
func NewGridSearch(b Blueprint, grid Grid, conf Config) (*GridSearch, error) {
	if b.New == nil {
		return nil, BlueprintError{Msg: "blueprint has no factory and cannot produce trainable estimators"}
	}
	if len(grid) > len(b.Params) {
		return nil, BlueprintError{Msg: fmt.Sprintf("grid has %d axes for %d constructor parameters", len(grid), len(b.Params))}
	}

	normalized, err := normalizeGrid(b, grid)
	if err != nil {
		return nil, err
	}

	metric := conf.Metric
	if metric == nil {
		metric = defaultMetric(b.Type)
	} else if !compatible(metric.Compatibility(), b.Compatibility) {
		return nil, IncompatibleMetricError{Metric: fmt.Sprintf("%T", metric), Estimator: b.Type}
	}

	validator := conf.Validator
	if validator == nil {
		if validator, err = validate.NewKFold(5); err != nil {
			return nil, err
		}
	}

	workers := conf.Workers
	if workers < 1 {
		workers = 1
	}

	return &GridSearch{
		blueprint:    b,
		grid:         normalized,
		metric:       metric,
		validator:    validator,
		retrain:      !conf.NoRetrain,
		workers:      workers,
		combinations: cartesian(normalized),
		logger:       conf.Logger,
		enc:          conf.Encoder,
	}, nil
}

// Train evaluates every combination in generation order and adopts the best
// scoring candidate. Any prior results are discarded first. A failing
// candidate aborts the whole search.
func (gs *GridSearch) Train(ds dataset.Dataset) error {
	labeled, ok := ds.(*dataset.Labeled)
	if !ok {
		return UnlabeledError{Op: "grid search training"}
	}

	gs.scores = make([]float64, len(gs.combinations))
	gs.best = nil
	gs.held = nil

	candidates := make([]Estimator, len(gs.combinations))
	eval := func(i int) error {
		est, err := gs.blueprint.New(gs.combinations[i]...)
		if err != nil {
			return errors.Wrapf(err, "combination %d %v: construction failed", i, gs.combinations[i])
		}
		score, err := gs.validator.Test(est, labeled, gs.metric)
		if err != nil {
			return errors.Wrapf(err, "combination %d %v: validation failed", i, gs.combinations[i])
		}
		candidates[i] = est
		gs.scores[i] = score
		return nil
	}

	if gs.workers > 1 {
		if err := gs.evalParallel(eval); err != nil {
			return err
		}
	} else {
		for i := range gs.combinations {
			if err := eval(i); err != nil {
				return err
			}
		}
	}

	// pick the winner in generation order so that ties go to the earliest
	// seen combination
	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, score := range gs.scores {
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
		if gs.logger != nil {
			gs.logger.Printf("combination %d/%d %v scored %v (best %v)", i+1, len(gs.combinations), gs.paramString(i), score, bestScore)
		}
	}
	if bestIdx < 0 {
		return errors.New("golem: no combination produced a comparable score")
	}
	gs.best = &Best{Score: bestScore, Params: gs.combinations[bestIdx]}

	if gs.enc != nil {
		if err := gs.replayProgress(); err != nil {
			return err
		}
	}

	winner := candidates[bestIdx]
	if gs.retrain {
		if err := winner.Train(labeled); err != nil {
			return errors.Wrapf(err, "retraining the winner %v failed", gs.paramString(bestIdx))
		}
	}
	gs.held = winner
	return nil
}

// evalParallel fans combination indices out to gs.workers goroutines. Scores
// land in their generation-order slots, so the winner selection afterwards is
// identical to the sequential path.
func (gs *GridSearch) evalParallel(eval func(int) error) error {
	g, ctx := errgroup.WithContext(context.Background())
	ch := make(chan int)

	g.Go(func() error {
		defer close(ch)
		for i := range gs.combinations {
			select {
			case ch <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < gs.workers; w++ {
		g.Go(func() error {
			for i := range ch {
				if err := eval(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (gs *GridSearch) replayProgress() error {
	bestScore := math.Inf(-1)
	var bestParams []interface{}
	for i, score := range gs.scores {
		if score > bestScore {
			bestScore = score
			bestParams = gs.combinations[i]
		}
		p := Progress{
			Index:      i,
			Total:      len(gs.combinations),
			Params:     gs.combinations[i],
			Score:      score,
			BestScore:  bestScore,
			BestParams: bestParams,
		}
		if err := gs.enc.Encode(p); err != nil {
			return errors.Wrapf(err, "encoding progress of combination %d", i)
		}
	}
	return gs.enc.Flush()
}

// Predict delegates to the estimator held from the last training run.
func (gs *GridSearch) Predict(ds dataset.Dataset) ([]interface{}, error) {
	if gs.held == nil {
		return nil, UntrainedError{Op: "Predict"}
	}
	return gs.held.Predict(ds)
}

// Proba forwards to the held estimator if it is probabilistic.
func (gs *GridSearch) Proba(ds dataset.Dataset) ([]map[interface{}]float64, error) {
	if gs.held == nil {
		return nil, UntrainedError{Op: "Proba"}
	}
	p, ok := gs.held.(Probabilistic)
	if !ok {
		return nil, UnsupportedError{Method: "Proba", Estimator: fmt.Sprintf("%T", gs.held)}
	}
	return p.Proba(ds)
}

func (gs *GridSearch) Type() EstimatorType { return gs.blueprint.Type }

func (gs *GridSearch) Compatibility() []dataset.DataType { return gs.blueprint.Compatibility }

func (gs *GridSearch) Trained() bool { return gs.held != nil && gs.held.Trained() }

// Combinations returns the generated parameter combinations in evaluation
// order.
func (gs *GridSearch) Combinations() [][]interface{} { return gs.combinations }

// Scores returns the validation scores, index aligned with Combinations.
// It is nil before the first training run.
func (gs *GridSearch) Scores() []float64 { return gs.scores }

// Best returns the winning combination, or nil before the first training run.
func (gs *GridSearch) Best() *Best { return gs.best }

// Base returns the estimator the search currently holds, or nil before the
// first training run.
func (gs *GridSearch) Base() Estimator { return gs.held }

func (gs *GridSearch) paramString(i int) string {
	combo := gs.combinations[i]
	s := "("
	for j, v := range combo {
		if j > 0 {
			s += ", "
		}
		if j < len(gs.blueprint.Params) {
			s += fmt.Sprintf("%s=%v", gs.blueprint.Params[j], v)
		} else {
			s += fmt.Sprintf("%v", v)
		}
	}
	return s + ")"
}

// normalizeGrid dedupes scalar axes, order preserved. Candidate values whose
// equality is not well defined (maps, slices, arbitrary structs) are kept
// as-is, duplicates included.
func normalizeGrid(b Blueprint, grid Grid) (Grid, error) {
	retVal := make(Grid, len(grid))
	for i, axis := range grid {
		if len(axis) == 0 {
			return nil, BlueprintError{Msg: fmt.Sprintf("parameter %s has no candidate values", paramName(b, i))}
		}
		if !isScalar(axis[0]) {
			retVal[i] = axis
			continue
		}
		seen := make(map[interface{}]bool)
		uniq := make([]interface{}, 0, len(axis))
		for _, v := range axis {
			// a non-scalar value mixed into a scalar axis passes through
			// undeduplicated rather than poisoning the seen map
			if !isScalar(v) {
				uniq = append(uniq, v)
				continue
			}
			if !seen[v] {
				seen[v] = true
				uniq = append(uniq, v)
			}
		}
		retVal[i] = uniq
	}
	return retVal, nil
}

func paramName(b Blueprint, i int) string {
	if i < len(b.Params) {
		return b.Params[i]
	}
	return fmt.Sprintf("#%d", i)
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// cartesian enumerates the product in odometer order: axis 0 outermost, the
// last axis varying fastest.
func cartesian(grid Grid) [][]interface{} {
	if len(grid) == 0 {
		return [][]interface{}{{}}
	}

	n := 1
	for _, axis := range grid {
		n *= len(axis)
	}

	retVal := make([][]interface{}, 0, n)
	idx := make([]int, len(grid))
	for {
		combo := make([]interface{}, len(grid))
		for i, j := range idx {
			combo[i] = grid[i][j]
		}
		retVal = append(retVal, combo)

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(grid[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return retVal
}

func defaultMetric(t EstimatorType) metrics.Metric {
	switch t {
	case Classifier, AnomalyDetector:
		return metrics.NewF1()
	case Regressor:
		return metrics.NewRSquared()
	case Clusterer:
		return metrics.NewVMeasure()
	}
	return metrics.NewAccuracy()
}

func compatible(a, b []dataset.DataType) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

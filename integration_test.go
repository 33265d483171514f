package golem_test

import (
	"testing"

	"github.com/gorgonia/golem"
	"github.com/gorgonia/golem/dataset"
	"github.com/gorgonia/golem/knn"
	"github.com/gorgonia/golem/validate"
	"github.com/stretchr/testify/assert"
)

// two well separated blobs, interleaved so sequential folds stay balanced
func blobs(n int) *dataset.Labeled {
	samples := make([][]float64, 0, 2*n)
	labels := make([]interface{}, 0, 2*n)
	for i := 0; i < n; i++ {
		off := float64(i%5) * 0.05
		samples = append(samples, []float64{off, off})
		labels = append(labels, "lo")
		samples = append(samples, []float64{5 + off, 5 + off})
		labels = append(labels, "hi")
	}
	retVal, _ := dataset.NewLabeled(samples, labels)
	return retVal
}

func knnBlueprint() golem.Blueprint {
	return golem.Blueprint{
		Type:          golem.Classifier,
		Compatibility: []dataset.DataType{dataset.Categorical},
		Params:        []string{"k", "weighted"},
		New: func(args ...interface{}) (golem.Estimator, error) {
			return knn.New(args[0].(int), args[1].(bool))
		},
	}
}

func TestGridSearchOverKNN(t *testing.T) {
	gs, err := golem.NewGridSearch(knnBlueprint(), golem.Grid{
		{1, 3, 5},
		{true, false},
	}, golem.Config{}) // default F1 metric, default 5-fold CV
	if err != nil {
		t.Fatalf("%+v", err)
	}

	ds := blobs(25)
	if err := gs.Train(ds); err != nil {
		t.Fatalf("%+v", err)
	}

	assert.Equal(t, 6, len(gs.Combinations()))
	assert.Equal(t, 6, len(gs.Scores()))

	best := gs.Best()
	if best == nil {
		t.Fatal("expected a best combination")
	}
	// the problem is trivially separable, so the winner must be perfect
	assert.InDelta(t, 1.0, best.Score, 1e-12)

	preds, err := gs.Predict(dataset.NewUnlabeled([][]float64{{0, 0.1}, {5.1, 5}}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []interface{}{"lo", "hi"}, preds)

	// knn is probabilistic, so the capability forwards
	probas, err := gs.Proba(dataset.NewUnlabeled([][]float64{{0, 0}}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.InDelta(t, 1.0, probas[0]["lo"], 1e-12)
}

func TestGridSearchDummyBaseline(t *testing.T) {
	b := golem.Blueprint{
		Type:          golem.Classifier,
		Compatibility: []dataset.DataType{dataset.Categorical},
		Params:        []string{},
		New: func(args ...interface{}) (golem.Estimator, error) {
			return golem.NewDummy(), nil
		},
	}

	ho, err := validate.NewHoldOut(0.8)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	gs, err := golem.NewGridSearch(b, golem.Grid{}, golem.Config{Validator: ho})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := gs.Train(blobs(25)); err != nil {
		t.Fatalf("%+v", err)
	}
	// an empty grid still yields the single empty combination
	assert.Equal(t, 1, len(gs.Combinations()))
	assert.True(t, gs.Trained())
}

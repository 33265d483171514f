package knn

import (
	"testing"

	"github.com/gorgonia/golem"
	"github.com/gorgonia/golem/dataset"
	"github.com/stretchr/testify/assert"
)

func clusters() *dataset.Labeled {
	samples := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1}, {0.1, 0.1},
		{5, 5}, {5.1, 5}, {5, 5.1}, {5.1, 5.1},
	}
	labels := []interface{}{"lo", "lo", "lo", "lo", "hi", "hi", "hi", "hi"}
	retVal, _ := dataset.NewLabeled(samples, labels)
	return retVal
}

func TestClassifier(t *testing.T) {
	assert := assert.New(t)

	c, err := New(3, false)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(golem.Classifier, c.Type())
	assert.False(c.Trained())

	if err := c.Train(clusters()); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.True(c.Trained())

	queries := dataset.NewUnlabeled([][]float64{{0.05, 0.05}, {5.05, 5.05}})
	preds, err := c.Predict(queries)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal([]interface{}{"lo", "hi"}, preds)
}

func TestClassifierProba(t *testing.T) {
	c, _ := New(4, false)
	if err := c.Train(clusters()); err != nil {
		t.Fatalf("%+v", err)
	}

	probas, err := c.Proba(dataset.NewUnlabeled([][]float64{{0, 0}}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.InDelta(t, 1.0, probas[0]["lo"], 1e-12)
}

func TestClassifierErrors(t *testing.T) {
	if _, err := New(0, false); err == nil {
		t.Fatal("expected an error for k=0")
	}

	c, _ := New(1, false)
	_, err := c.Predict(dataset.NewUnlabeled([][]float64{{1}}))
	if _, ok := err.(golem.UntrainedError); !ok {
		t.Fatalf("expected UntrainedError, got %v", err)
	}

	empty, _ := dataset.NewLabeled(nil, nil)
	if err := c.Train(empty); err == nil {
		t.Fatal("expected an error for an empty dataset")
	}
}

func TestWeightedVotesBreakDistance(t *testing.T) {
	// two "far" votes vs one touching vote: weighting flips the outcome
	samples := [][]float64{{0}, {10}, {10.2}}
	labels := []interface{}{"near", "far", "far"}
	ds, _ := dataset.NewLabeled(samples, labels)

	unweighted, _ := New(3, false)
	unweighted.Train(ds)
	preds, err := unweighted.Predict(dataset.NewUnlabeled([][]float64{{0.01}}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, "far", preds[0])

	weighted, _ := New(3, true)
	weighted.Train(ds)
	preds, err = weighted.Predict(dataset.NewUnlabeled([][]float64{{0.01}}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, "near", preds[0])
}

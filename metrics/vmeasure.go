package metrics

import (
	"math"

	"github.com/gorgonia/golem/dataset"
)

// VMeasure is the harmonic mean of homogeneity and completeness of a
// clustering, both defined through conditional entropy.
type VMeasure struct{}

func NewVMeasure() VMeasure { return VMeasure{} }

func (VMeasure) Range() (min, max float64) { return 0, 1 }

func (VMeasure) Compatibility() []dataset.DataType {
	return []dataset.DataType{dataset.Categorical}
}

func (VMeasure) Score(predictions, labels []interface{}) (float64, error) {
	if err := checkLengths("v measure", predictions, labels); err != nil {
		return 0, err
	}

	n := float64(len(labels))

	classTotals := make(map[interface{}]float64)
	clusterTotals := make(map[interface{}]float64)
	joint := make(map[[2]interface{}]float64)
	for i, p := range predictions {
		l := labels[i]
		classTotals[l]++
		clusterTotals[p]++
		joint[[2]interface{}{l, p}]++
	}

	// H(C|K) and H(K|C) from the joint counts
	var hCK, hKC float64
	for key, count := range joint {
		l, p := key[0], key[1]
		hCK -= count / n * math.Log(count/clusterTotals[p])
		hKC -= count / n * math.Log(count/classTotals[l])
	}

	var hC, hK float64
	for _, count := range classTotals {
		hC -= count / n * math.Log(count/n)
	}
	for _, count := range clusterTotals {
		hK -= count / n * math.Log(count/n)
	}

	homogeneity, completeness := 1.0, 1.0
	if hC > 0 {
		homogeneity = 1 - hCK/hC
	}
	if hK > 0 {
		completeness = 1 - hKC/hK
	}
	if homogeneity+completeness == 0 {
		return 0, nil
	}
	return 2 * homogeneity * completeness / (homogeneity + completeness), nil
}

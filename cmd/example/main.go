// Command example runs a small grid search over a k nearest neighbours
// classifier and writes the per-combination scores out as a CSV and an
// animated GIF.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gorgonia/golem"
	"github.com/gorgonia/golem/dataset"
	gifenc "github.com/gorgonia/golem/encoding/gif"
	"github.com/gorgonia/golem/knn"
)

var (
	csvOut = flag.String("csv", "scores.csv", "where to dump the scores")
	gifOut = flag.String("gif", "", "optionally render progress to this GIF")
	seed   = flag.Int64("seed", 1337, "dataset seed")
)

// two noisy blobs
func makeData(n int, seed int64) *dataset.Labeled {
	r := rand.New(rand.NewSource(seed))
	samples := make([][]float64, 0, 2*n)
	labels := make([]interface{}, 0, 2*n)
	for i := 0; i < n; i++ {
		samples = append(samples, []float64{r.NormFloat64(), r.NormFloat64()})
		labels = append(labels, "a")
		samples = append(samples, []float64{3 + r.NormFloat64(), 3 + r.NormFloat64()})
		labels = append(labels, "b")
	}
	ds, err := dataset.NewLabeled(samples, labels)
	if err != nil {
		log.Fatal(err)
	}
	return ds
}

func main() {
	flag.Parse()

	conf := golem.Config{
		Logger: log.New(os.Stderr, "", log.Ltime),
	}

	var gifFile *os.File
	if *gifOut != "" {
		var err error
		if gifFile, err = os.Create(*gifOut); err != nil {
			log.Fatal(err)
		}
		defer gifFile.Close()
		conf.Encoder = gifenc.NewEncoder(400, 1000, gifFile)
	}

	blueprint := golem.Blueprint{
		Type:          golem.Classifier,
		Compatibility: []dataset.DataType{dataset.Categorical},
		Params:        []string{"k", "weighted"},
		New: func(args ...interface{}) (golem.Estimator, error) {
			return knn.New(args[0].(int), args[1].(bool))
		},
	}

	gs, err := golem.NewGridSearch(blueprint, golem.Grid{
		{1, 3, 5, 7, 9},
		{true, false},
	}, conf)
	if err != nil {
		log.Fatal(err)
	}

	ds := makeData(100, *seed)
	if err := gs.Train(ds); err != nil {
		log.Fatalf("%+v", err)
	}

	best := gs.Best()
	fmt.Printf("best: k=%v weighted=%v (score %.4f)\n", best.Params[0], best.Params[1], best.Score)

	if err := gs.Dump(*csvOut); err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Printf("scores written to %s\n", *csvOut)
}

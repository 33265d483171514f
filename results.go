package golem

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Dump writes the combinations and their scores of the last training run to
// filename as CSV, one row per combination.
func (gs *GridSearch) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	header := make([]string, 0, len(gs.grid)+1)
	for i := range gs.grid {
		header = append(header, paramName(gs.blueprint, i))
	}
	header = append(header, "score")
	if err := w.Write(header); err != nil {
		return err
	}

	for i, combo := range gs.combinations {
		record := make([]string, 0, len(combo)+1)
		for _, v := range combo {
			record = append(record, fmt.Sprintf("%v", v))
		}
		var score string
		if i < len(gs.scores) {
			score = fmt.Sprintf("%v", gs.scores[i])
		}
		record = append(record, score)
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

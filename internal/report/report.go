package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-lattice/internal/sweep"
)

func WriteJSON(res *sweep.Result, outdir string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "sweep.json"), b, 0644)
}

// WriteCSV writes the (steps, value) pairs as comma-separated text, one
// resolution per row. Non-finite values serialize as NaN/+Inf/-Inf via %v.
func WriteCSV(points []sweep.Point, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "sweep.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"steps", "value"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{fmt.Sprintf("%d", p.Steps), fmt.Sprintf("%v", p.Value)}); err != nil {
			return err
		}
	}
	return nil
}

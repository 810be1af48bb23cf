package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
)

var csvHeader = []string{"k", "bm", "env", "instp", "instf"}

func writeCSV(w io.Writer, out gammatone.Output) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for k := range out.Len() {
		row[0] = strconv.Itoa(k)
		row[1] = formatFloat(out.BM[k])
		row[2] = formatFloat(out.Env[k])
		row[3] = formatFloat(out.InstPhase[k])
		row[4] = formatFloat(out.InstFreq[k])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", k, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

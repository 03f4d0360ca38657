package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/matrixsteg/benchmarking"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var OutputFile string
var EmbeddingChange bool
var WindowError bool

var CSVRun = func(cmd *cobra.Command, args []string) error {
	stats := make([]*tools.SimulationStats, len(args))
	var err error
	percentagesFloats := make(map[float64]bool)
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			return err
		}
		if stats[i] == nil {
			return fmt.Errorf("results file %v does not exist", resultFile)
		}
		for p := range stats[i].Stats {
			percentagesFloats[p] = true
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	percentagesList := maps.Keys(percentagesFloats)
	slices.Sort(percentagesList)

	header := []string{"Results File"}
	for _, p := range percentagesList {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err = w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(args[i], filepath.Ext(args[i]))

		for i, p := range percentagesList {
			v, has := s.Stats[p]
			if has {
				record[i+1] = fmt.Sprintf("%v", Metric(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}

// Metric picks the mean selected by the flags, the nibble error by default.
func Metric(v benchmarking.Stats) float64 {
	switch {
	case EmbeddingChange:
		return v.EmbeddingChangeRate.Mean
	case WindowError:
		return v.ChannelWindowError.Mean
	default:
		return v.ChannelNibbleError.Mean
	}
}

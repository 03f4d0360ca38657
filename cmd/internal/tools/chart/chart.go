package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/csv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var OutputFile string

var ChartRun = func(cmd *cobra.Command, args []string) error {
	// loop through all the results files and collect data needed for displaying
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

	xvalues, xnames := xAxisAndValues(percentagesFloats)

	f, err := os.Create(OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Hidden nibble error rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Crossover Probability",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Error Rate",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)
	for i, s := range stats {
		bar.AddSeries(args[i], series(s, xvalues))
	}

	return bar.Render(f)
}

func xAxisAndValues(percentagesFloats map[float64]bool) ([]float64, []string) {
	nums := maps.Keys(percentagesFloats)
	slices.Sort(nums)

	strs := make([]string, 0, len(nums))
	for _, n := range nums {
		strs = append(strs, fmt.Sprint(n))
	}

	return nums, strs
}

func series(stat *tools.SimulationStats, values []float64) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: csv.Metric(x),
		}
	}
	return results
}

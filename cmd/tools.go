package cmd

import (
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/analyze"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/bsc"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/capacity"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/chart"
	"github.com/nathanhack/matrixsteg/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for inspecting stego images and the embedding scheme",
	Long:    `Tools for inspecting stego images and the embedding scheme`,
}

// toolsAnalyzeCmd represents the analyze command
var toolsAnalyzeCmd = &cobra.Command{
	Use:     "analyze",
	Aliases: []string{"a"},
	Short:   "Measures the distortion between a cover and a stego image",
	Long:    `Calculates MSE, PSNR and the number of changed pixels and bits, optionally writing a heatmap of the changed channels.`,
	Args:    cobra.NoArgs,
	RunE:    analyze.AnalyzeRun,
}

// toolsCapacityCmd represents the capacity command
var toolsCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Prints how large a secret image a cover image can carry",
	Long:  `Prints how large a secret image a cover image can carry. Secret rows past the capacity are dropped by merge.`,
	Args:  cobra.NoArgs,
	RunE:  capacity.CapacityRun,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators measuring how hidden nibbles survive noise on the stego bits`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long: `A binary symmetric channel simulator: every stego window bit is flipped with the crossover probability.
With --flips exactly that many bits of every window are flipped instead.
Results are resumed from RESULT_JSON if it exists, a .zst suffix stores them compressed.`,
	Args: cobra.ExactArgs(1),
	RunE: bsc.BscRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML bar chart",
	Long:    `Export to an HTML bar chart`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsAnalyzeCmd)
	toolsCmd.AddCommand(toolsCapacityCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsAnalyzeCmd.Flags().StringVarP(&analyze.Original, "original", "o", "", "path to the original cover image (required)")
	toolsAnalyzeCmd.Flags().StringVarP(&analyze.Stego, "stego", "s", "", "path to the stego image (required)")
	toolsAnalyzeCmd.Flags().StringVarP(&analyze.Heatmap, "heatmap", "d", "", "optional output path for the changed channel heatmap")
	toolsAnalyzeCmd.MarkFlagRequired("original")
	toolsAnalyzeCmd.MarkFlagRequired("stego")

	toolsCapacityCmd.Flags().StringVarP(&capacity.Image, "image", "i", "", "cover image path (required)")
	toolsCapacityCmd.Flags().BoolVar(&capacity.Exclusive, "exclusive-bound", false, "skip the last block of columns whose height is a multiple of 4")
	toolsCapacityCmd.MarkFlagRequired("image")

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.05, 0.10, 0.20, 0.30, 0.40, 0.50}, "probability of crossover errors to test [0, 1]")
	toolsBscCmd.Flags().IntSliceVarP(&bsc.FlipCounts, "flips", "f", nil, "flip exactly this many stego bits per window instead of using crossover probabilities [0, 15]")
	toolsBscCmd.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.EmbeddingChange, "embedding", "e", false, "outputs the EmbeddingChangeRate instead of ChannelNibbleError")
	toolsCSVCmd.Flags().BoolVarP(&csv.WindowError, "window", "w", false, "outputs the ChannelWindowError instead of ChannelNibbleError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&csv.EmbeddingChange, "embedding", "e", false, "charts the EmbeddingChangeRate instead of ChannelNibbleError")
	toolsChartCmd.Flags().BoolVarP(&csv.WindowError, "window", "w", false, "charts the ChannelWindowError instead of ChannelNibbleError")
}

package cmd

import (
	"github.com/nathanhack/matrixsteg/cmd/internal/merge"
	"github.com/nathanhack/matrixsteg/cmd/internal/unmerge"

	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:     "merge",
	Aliases: []string{"m"},
	Short:   "hides a secret image inside a cover image",
	Long: `Hides the secret image (--image2) inside the cover image (--image1) and writes the stego image to --output.
The secret must not be wider or taller than the cover. Only the first height/4 secret rows fit.`,
	Args: cobra.NoArgs,
	RunE: merge.MergeRun,
}

// unmergeCmd represents the unmerge command
var unmergeCmd = &cobra.Command{
	Use:     "unmerge",
	Aliases: []string{"u"},
	Short:   "recovers a secret image from a stego image",
	Long: `Recovers the secret image hidden in --image and writes it to --output.
The recovered image has the size of the stego image, only the top 4 bits of each channel survive.`,
	Args: cobra.NoArgs,
	RunE: unmerge.UnmergeRun,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVar(&merge.Image1, "image1", "", "cover image path (required)")
	mergeCmd.Flags().StringVar(&merge.Image2, "image2", "", "secret image path (required)")
	mergeCmd.Flags().StringVarP(&merge.Output, "output", "o", "", "stego image output path, use a lossless format (required)")
	mergeCmd.Flags().UintVarP(&merge.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	mergeCmd.Flags().BoolVar(&merge.Exclusive, "exclusive-bound", false, "skip the last block of columns whose height is a multiple of 4")
	mergeCmd.Flags().BoolVarP(&merge.Progress, "progress", "p", false, "show a progress bar")
	mergeCmd.MarkFlagRequired("image1")
	mergeCmd.MarkFlagRequired("image2")
	mergeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(unmergeCmd)
	unmergeCmd.Flags().StringVar(&unmerge.Image, "image", "", "stego image path (required)")
	unmergeCmd.Flags().StringVarP(&unmerge.Output, "output", "o", "", "recovered secret image output path (required)")
	unmergeCmd.Flags().UintVarP(&unmerge.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	unmergeCmd.Flags().BoolVar(&unmerge.Exclusive, "exclusive-bound", false, "must match the bound used to merge")
	unmergeCmd.Flags().BoolVarP(&unmerge.Progress, "progress", "p", false, "show a progress bar")
	unmergeCmd.MarkFlagRequired("image")
	unmergeCmd.MarkFlagRequired("output")
}

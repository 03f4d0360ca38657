package analyze

import (
	"fmt"

	"github.com/nathanhack/matrixsteg/analysis"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Original string
	Stego    string
	Heatmap  string
)

var AnalyzeRun = func(cmd *cobra.Command, args []string) error {
	original, err := pixelgrid.Load(Original)
	if err != nil {
		return fmt.Errorf("unable to load original image: %w", err)
	}
	stego, err := pixelgrid.Load(Stego)
	if err != nil {
		return fmt.Errorf("unable to load stego image: %w", err)
	}

	report, err := analysis.Compare(original, stego)
	if err != nil {
		return err
	}
	logrus.Debugf("Analysis %v", report)

	fmt.Printf("MSE (Mean Squared Error):       %.4f\n", report.MSE)
	fmt.Printf("PSNR (Peak Signal-to-Noise):    %.2f dB\n", report.PSNR)
	fmt.Printf("Changed pixels:                 %v of %v\n", report.ChangedPixels, original.Width()*original.Height())
	fmt.Printf("Changed bits:                   %v\n", report.ChangedBits)

	if Heatmap == "" {
		return nil
	}

	heatmap, err := analysis.Heatmap(original, stego)
	if err != nil {
		return err
	}
	if err := pixelgrid.Save(heatmap, Heatmap); err != nil {
		return err
	}
	fmt.Printf("Heatmap saved to:               %s\n", Heatmap)
	return nil
}

package merge

import (
	"fmt"

	"github.com/nathanhack/matrixsteg/cmd/internal/interrupt"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/nathanhack/matrixsteg/stego"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Image1    string
	Image2    string
	Output    string
	Threads   uint
	Exclusive bool
	Progress  bool
)

var MergeRun = func(cmd *cobra.Command, args []string) error {
	//fail before doing any work if the output can't be written
	if err := pixelgrid.CheckFormat(Output); err != nil {
		return err
	}

	cover, err := pixelgrid.Load(Image1)
	if err != nil {
		return fmt.Errorf("unable to load cover image: %w", err)
	}
	secret, err := pixelgrid.Load(Image2)
	if err != nil {
		return fmt.Errorf("unable to load secret image: %w", err)
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	e := stego.Embedder{
		Threads:      int(Threads),
		Bound:        stego.InclusiveBound,
		ShowProgress: Progress,
	}
	if Exclusive {
		e.Bound = stego.ExclusiveBound
	}

	result, err := e.Merge(ctx, cover, secret)
	if err != nil {
		return err
	}

	logrus.Infof("Writing stego image to %v", Output)
	return pixelgrid.Save(result, Output)
}

package unmerge

import (
	"fmt"

	"github.com/nathanhack/matrixsteg/cmd/internal/interrupt"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/nathanhack/matrixsteg/stego"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Image     string
	Output    string
	Threads   uint
	Exclusive bool
	Progress  bool
)

var UnmergeRun = func(cmd *cobra.Command, args []string) error {
	if err := pixelgrid.CheckFormat(Output); err != nil {
		return err
	}

	img, err := pixelgrid.Load(Image)
	if err != nil {
		return fmt.Errorf("unable to load stego image: %w", err)
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

	result, err := e.Unmerge(ctx, img)
	if err != nil {
		return err
	}

	logrus.Infof("Writing recovered image to %v", Output)
	return pixelgrid.Save(result, Output)
}

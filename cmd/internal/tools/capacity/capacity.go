package capacity

import (
	"fmt"

	"github.com/nathanhack/matrixsteg/gf2"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/nathanhack/matrixsteg/stego"
	"github.com/spf13/cobra"
)

var (
	Image     string
	Exclusive bool
)

var CapacityRun = func(cmd *cobra.Command, args []string) error {
	cover, err := pixelgrid.Load(Image)
	if err != nil {
		return fmt.Errorf("unable to load cover image: %w", err)
	}

	bound := stego.InclusiveBound
	if Exclusive {
		bound = stego.ExclusiveBound
	}
	width, height := stego.Capacity(cover.Width(), cover.Height(), bound)

	fmt.Printf("Cover:                          %vx%v\n", cover.Width(), cover.Height())
	fmt.Printf("Largest secret:                 %vx%v (%v bound)\n", width, height, bound)
	fmt.Printf("Hidden bits:                    %v\n", width*height*3*gf2.ParitySymbols)
	fmt.Printf("Max flipped bits:               %v\n", width*height*3)
	return nil
}

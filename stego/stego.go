// Package stego walks cover and secret pixel grids in 4-pixel column blocks and hides
// (Merge) or recovers (Unmerge) one secret pixel per block.
//
// Blocks are visited column by column. Within column x the blocks start at rows
// 0, 4, 8, ... and the b-th block of the column carries the secret pixel at (x, b).
package stego

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"github.com/nathanhack/matrixsteg/window"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// Embedder holds the walk settings shared by Merge and Unmerge.
type Embedder struct {
	Threads      int   // 1 walks columns sequentially, 0 uses the number of cpus
	Bound        Bound // must be the same for Merge and the matching Unmerge
	ShowProgress bool
}

// Merge hides secret in cover using the zero Embedder.
func Merge(ctx context.Context, cover, secret pixelgrid.Grid) (*pixelgrid.RGBGrid, error) {
	return Embedder{}.Merge(ctx, cover, secret)
}

// Unmerge recovers the secret hidden in stego using the zero Embedder.
func Unmerge(ctx context.Context, stego pixelgrid.Grid) (*pixelgrid.RGBGrid, error) {
	return Embedder{}.Unmerge(ctx, stego)
}

// Merge returns a copy of cover with the top 4 bits of every channel of secret hidden
// in the low bits of its blocks. Blocks past the extent of secret carry black.
// Rows that do not start or belong to a block are copied from cover unchanged.
// Grids are read concurrently when Threads != 1.
func (e Embedder) Merge(ctx context.Context, cover, secret pixelgrid.Grid) (*pixelgrid.RGBGrid, error) {
	if secret.Width() > cover.Width() || secret.Height() > cover.Height() {
		return nil, &DimensionError{
			CoverWidth:   cover.Width(),
			CoverHeight:  cover.Height(),
			SecretWidth:  secret.Width(),
			SecretHeight: secret.Height(),
		}
	}

	_, maxHeight := Capacity(cover.Width(), cover.Height(), e.Bound)
	if secret.Height() > maxHeight {
		logrus.Warnf("cover holds %v secret rows, secret rows %v to %v will be dropped", maxHeight, maxHeight, secret.Height()-1)
	}
	logrus.Debugf("Merging %vx%v secret into %vx%v cover (%v bound)", secret.Width(), secret.Height(), cover.Width(), cover.Height(), e.Bound)

	output := pixelgrid.Copy(cover)
	height := cover.Height()
	err := e.walkColumns(ctx, cover.Width(), func(x int) {
		for b, y := 0, 0; e.Bound.admits(y, height); b, y = b+1, y+BlockHeight {
			secretPixel := pixelgrid.Black
			if x < secret.Width() && b < secret.Height() {
				secretPixel = secret.At(x, b)
			}

			block := readBlock(cover, x, y)
			for i, p := range window.EmbedPixels(block, secretPixel) {
				output.Set(x, y+i, p)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Merge complete")
	return output, nil
}

// Unmerge rebuilds the hidden secret. The result has the dimensions of stego: the pixel
// carried by the b-th block of column x lands at (x, b) and everything else is black.
// Only the top 4 bits of each channel are recovered, the low 4 bits are zero.
func (e Embedder) Unmerge(ctx context.Context, stego pixelgrid.Grid) (*pixelgrid.RGBGrid, error) {
	logrus.Debugf("Unmerging %vx%v stego image (%v bound)", stego.Width(), stego.Height(), e.Bound)

	output := pixelgrid.New(stego.Width(), stego.Height())
	height := stego.Height()
	err := e.walkColumns(ctx, stego.Width(), func(x int) {
		for b, y := 0, 0; e.Bound.admits(y, height); b, y = b+1, y+BlockHeight {
			output.Set(x, b, window.ExtractPixel(readBlock(stego, x, y)))
		}
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Unmerge complete")
	return output, nil
}

func readBlock(g pixelgrid.Grid, x, y int) (block [BlockHeight]pixelgrid.RGB) {
	for i := range block {
		block[i] = g.At(x, y+i)
	}
	return
}

// walkColumns calls column for every x in [0, width). Each call only touches its own
// column so calls may run on a thread pool.
func (e Embedder) walkColumns(ctx context.Context, width int, column func(x int)) error {
	var bar *pb.ProgressBar
	if e.ShowProgress {
		bar = pb.StartNew(width)
	}

	if e.Threads == 1 {
		for x := 0; x < width; x++ {
			select {
			case <-ctx.Done():
				if bar != nil {
					bar.Finish()
				}
				return ctx.Err()
			default:
			}
			column(x)
			if bar != nil {
				bar.Increment()
			}
		}
	} else {
		pool := threadpool.NewFixedSize(ctx, e.Threads, width)
		for x := 0; x < width; x++ {
			col := x
			pool.Add(func() {
				column(col)
				if bar != nil {
					bar.Increment()
				}
			})
		}
		pool.Wait()
	}

	if bar != nil {
		bar.Finish()
	}
	return ctx.Err()
}

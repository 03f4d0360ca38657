// Package analysis measures how much a stego image differs from its cover.
package analysis

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	"gonum.org/v1/gonum/mat"
)

// Report summarises the distortion between two equally sized grids.
type Report struct {
	MSE           float64          // mean squared error over every channel sample
	PSNR          float64          // peak signal to noise ratio in dB, +Inf for identical grids
	ChangedPixels int              // pixels with at least one channel changed
	ChangedBits   int              // total number of flipped channel bits
	ChannelDelta  [3]avgstd.AvgStd // absolute difference per channel (R, G, B)
}

func (r Report) String() string {
	return fmt.Sprintf("{MSE:%0.4f, PSNR:%0.2fdB, ChangedPixels:%v, ChangedBits:%v, R:%0.02f(+/-%0.02f), G:%0.02f(+/-%0.02f), B:%0.02f(+/-%0.02f)}",
		r.MSE, r.PSNR, r.ChangedPixels, r.ChangedBits,
		r.ChannelDelta[0].Mean, math.Sqrt(r.ChannelDelta[0].SampledVariance()),
		r.ChannelDelta[1].Mean, math.Sqrt(r.ChannelDelta[1].SampledVariance()),
		r.ChannelDelta[2].Mean, math.Sqrt(r.ChannelDelta[2].SampledVariance()),
	)
}

// Compare computes the distortion report of stego against original.
func Compare(original, stego pixelgrid.Grid) (Report, error) {
	if original.Width() != stego.Width() || original.Height() != stego.Height() {
		return Report{}, fmt.Errorf("images must have the same size but found %vx%v and %vx%v",
			original.Width(), original.Height(), stego.Width(), stego.Height())
	}

	var report Report
	samples := original.Width() * original.Height() * 3
	if samples == 0 {
		report.PSNR = math.Inf(1)
		return report, nil
	}

	diff := mat.NewVecDense(samples, nil)
	i := 0
	for y := 0; y < original.Height(); y++ {
		for x := 0; x < original.Width(); x++ {
			a, b := original.At(x, y).Channels(), stego.At(x, y).Channels()
			if a != b {
				report.ChangedPixels++
			}
			for c := 0; c < 3; c++ {
				d := float64(a[c]) - float64(b[c])
				diff.SetVec(i, d)
				report.ChannelDelta[c].Update(math.Abs(d))
				report.ChangedBits += bits.OnesCount8(a[c] ^ b[c])
				i++
			}
		}
	}

	report.MSE = mat.Dot(diff, diff) / float64(samples)
	report.PSNR = PSNR(report.MSE)
	return report, nil
}

// PSNR converts a mean squared error over 8-bit samples into dB.
func PSNR(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

// Heatmap marks every changed channel of every pixel with 255, unchanged channels stay 0.
func Heatmap(original, stego pixelgrid.Grid) (*pixelgrid.RGBGrid, error) {
	if original.Width() != stego.Width() || original.Height() != stego.Height() {
		return nil, fmt.Errorf("images must have the same size but found %vx%v and %vx%v",
			original.Width(), original.Height(), stego.Width(), stego.Height())
	}

	result := pixelgrid.New(original.Width(), original.Height())
	for y := 0; y < original.Height(); y++ {
		for x := 0; x < original.Width(); x++ {
			a, b := original.At(x, y).Channels(), stego.At(x, y).Channels()
			var marked [3]uint8
			for c := range marked {
				if a[c] != b[c] {
					marked[c] = 0xff
				}
			}
			result.Set(x, y, pixelgrid.FromChannels(marked))
		}
	}
	return result, nil
}

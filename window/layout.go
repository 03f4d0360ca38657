package window

import (
	"github.com/nathanhack/matrixsteg/gf2"
	"github.com/nathanhack/matrixsteg/pixelgrid"
	mat "github.com/nathanhack/sparsemat"
)

// lowBits is how many low order bits each of the four pixels lends to the window.
var lowBits = [4]int{3, 4, 4, 4}

// Gather builds the window of one color channel from four vertically adjacent pixels.
// Positions 1-3 are the 3 lowest bits of channel[0], 4-7, 8-11 and 12-15 the 4 lowest
// bits of channel[1], channel[2] and channel[3], most significant bit first.
func Gather(channel [4]uint8) mat.SparseVector {
	window := mat.CSRVec(Length)
	pos := 0
	for p, n := range lowBits {
		for bit := n - 1; bit >= 0; bit-- {
			window.Set(pos, int(channel[p]>>bit)&1)
			pos++
		}
	}
	return window
}

// Scatter writes the window back into the low bits of the four channel values,
// keeping the high bits of each value.
func Scatter(window mat.SparseVector, channel [4]uint8) [4]uint8 {
	checkLengths(window, nil)

	var result [4]uint8
	pos := 0
	for p, n := range lowBits {
		v := channel[p] &^ (1<<n - 1)
		for bit := n - 1; bit >= 0; bit-- {
			v |= uint8(window.At(pos)&1) << bit
			pos++
		}
		result[p] = v
	}
	return result
}

// NibbleOf returns the top 4 bits of b, most significant bit first.
func NibbleOf(b uint8) mat.SparseVector {
	return gf2.IndexToBits(int(b>>4), NibbleLength)
}

// ByteOf rebuilds a channel value from a nibble, the low 4 bits are zero.
func ByteOf(nibble mat.SparseVector) uint8 {
	if nibble.Len() != NibbleLength {
		panic(gf2.InvariantViolation{Msg: "nibble must hold exactly 4 bits"})
	}
	return uint8(gf2.BitsToIndex(nibble) << 4)
}

// EmbedPixels hides the top 4 bits of each channel of secret in the block of four pixels.
func EmbedPixels(block [4]pixelgrid.RGB, secret pixelgrid.RGB) [4]pixelgrid.RGB {
	secretChannels := secret.Channels()

	var channels [4][3]uint8
	for i, p := range block {
		channels[i] = p.Channels()
	}

	for c := 0; c < 3; c++ {
		values := [4]uint8{channels[0][c], channels[1][c], channels[2][c], channels[3][c]}
		corrected := EmbedNibble(Gather(values), NibbleOf(secretChannels[c]))
		values = Scatter(corrected, values)
		for i := range channels {
			channels[i][c] = values[i]
		}
	}

	var result [4]pixelgrid.RGB
	for i := range result {
		result[i] = pixelgrid.FromChannels(channels[i])
	}
	return result
}

// ExtractPixel recovers the secret pixel hidden in a block of four pixels.
func ExtractPixel(block [4]pixelgrid.RGB) pixelgrid.RGB {
	var result [3]uint8
	for c := 0; c < 3; c++ {
		values := [4]uint8{block[0].Channels()[c], block[1].Channels()[c], block[2].Channels()[c], block[3].Channels()[c]}
		result[c] = ByteOf(ExtractNibble(Gather(values)))
	}
	return pixelgrid.FromChannels(result)
}

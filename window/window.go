// Package window embeds and extracts one 4-bit nibble in a 15-bit window of low order
// channel bits spread over four pixels, flipping at most one bit of the window.
package window

import (
	"github.com/nathanhack/matrixsteg/gf2"
	mat "github.com/nathanhack/sparsemat"
)

const (
	// Length is the number of bits in a window.
	Length = gf2.CodewordLength
	// NibbleLength is the number of secret bits carried by one window.
	NibbleLength = gf2.ParitySymbols
)

// EmbedNibble returns a copy of window with at most one bit flipped so that its
// syndrome equals nibble. The input window is left untouched.
func EmbedNibble(window, nibble mat.SparseVector) mat.SparseVector {
	checkLengths(window, nibble)

	syndrome := gf2.Syndrome(window)
	difference := gf2.Subtract(nibble, syndrome)
	flipIndex := gf2.BitsToIndex(difference)

	corrected := mat.CSRVecCopy(window)
	if gf2.IndexIsValid(flipIndex, corrected.Len()) {
		gf2.FlipBit(corrected, flipIndex)
	}
	return corrected
}

// ExtractNibble returns the nibble carried by window.
func ExtractNibble(window mat.SparseVector) mat.SparseVector {
	checkLengths(window, nil)
	return gf2.Syndrome(window)
}

func checkLengths(window, nibble mat.SparseVector) {
	if window.Len() != Length {
		panic(gf2.InvariantViolation{Msg: "window must hold exactly 15 bits"})
	}
	if nibble != nil && nibble.Len() != NibbleLength {
		panic(gf2.InvariantViolation{Msg: "nibble must hold exactly 4 bits"})
	}
}

package gf2

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

const (
	// ParitySymbols is the number of rows of the embedding parity matrix (bits per nibble).
	ParitySymbols = 4
	// CodewordLength is the number of columns of the embedding parity matrix (bits per window).
	CodewordLength = 1<<ParitySymbols - 1
)

// parity is shared by every caller and must never be mutated, hand out copies.
var parity = Hamming(ParitySymbols)

func init() {
	if err := ValidateParityMatrix(parity); err != nil {
		panic(err)
	}
}

// Hamming creates the parity matrix of the Hamming code with paritySymbols parity symbols.
// Column k (1-based) holds the binary digits of k with the most significant bit on row 0,
// so the syndrome of a single bit error at position k reads as k.
func Hamming(paritySymbols int) mat.SparseMat {
	if paritySymbols < 2 {
		panic("hamming codes require >=2 parity symbols")
	}
	n := 1<<paritySymbols - 1
	H := mat.CSRMat(paritySymbols, n)

	for i := 1; i <= n; i++ {
		H.SetColumn(i-1, IndexToBits(i, paritySymbols))
	}
	return H
}

// ParityMatrix returns a copy of the fixed 4x15 parity matrix used for embedding.
func ParityMatrix() mat.SparseMat {
	return mat.CSRMatCopy(parity)
}

// ValidateParityMatrix checks H has the embedding shape and that every column k reads as k,
// the property that lets a syndrome difference name the bit to flip.
func ValidateParityMatrix(H mat.SparseMat) error {
	rows, cols := H.Dims()
	if rows != ParitySymbols || cols != CodewordLength {
		return fmt.Errorf("parity matrix shape (%v, %v) required but found (%v, %v)", ParitySymbols, CodewordLength, rows, cols)
	}

	for k := 1; k <= cols; k++ {
		if v := BitsToIndex(H.Column(k - 1)); v != k {
			return fmt.Errorf("parity matrix column %v reads as %v", k, v)
		}
	}
	return nil
}

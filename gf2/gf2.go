// Package gf2 holds the binary matrix arithmetic used by the matrix embedding scheme:
// the fixed Hamming parity matrix, GF(2) products and bit-vector/index conversions.
package gf2

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

// InvariantViolation is the panic value used when a caller breaks a shape contract,
// e.g. a window that is not 15 bits long. It signals a programming defect, not bad input.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.Msg
}

func violation(format string, args ...interface{}) InvariantViolation {
	return InvariantViolation{Msg: fmt.Sprintf(format, args...)}
}

// Multiply returns H*vec with every entry reduced modulo 2.
func Multiply(H mat.SparseMat, vec mat.SparseVector) mat.SparseVector {
	rows, cols := H.Dims()
	if vec.Len() != cols {
		panic(violation("vector length == %v is required but found %v", cols, vec.Len()))
	}

	result := mat.CSRVec(rows)
	result.MatMul(H, vec)
	return result
}

// Syndrome is Multiply against the fixed embedding parity matrix.
func Syndrome(window mat.SparseVector) mat.SparseVector {
	return Multiply(parity, window)
}

// Subtract returns a-b over GF(2), which is the same as a+b.
func Subtract(a, b mat.SparseVector) mat.SparseVector {
	if a.Len() != b.Len() {
		panic(violation("vector lengths must match but found %v and %v", a.Len(), b.Len()))
	}
	result := mat.CSRVecCopy(a)
	result.Add(result, b)
	return result
}

// BitsToIndex reads vec as an unsigned integer, most significant bit first.
func BitsToIndex(vec mat.SparseVector) int {
	index := 0
	for i := 0; i < vec.Len(); i++ {
		index = index<<1 | vec.At(i)&1
	}
	return index
}

// IndexToBits is the inverse of BitsToIndex, keeping only the low length bits of index.
func IndexToBits(index, length int) mat.SparseVector {
	vec := mat.CSRVec(length)
	for i := 0; i < length; i++ {
		vec.Set(i, (index>>(length-1-i))&1)
	}
	return vec
}

// IndexIsValid reports whether index names a position in the 1-based range [1, length].
// Zero (and anything past length) means no bit needs flipping.
func IndexIsValid(index, length int) bool {
	return 1 <= index && index <= length
}

// FlipBit flips the bit at the 1-based position index in place.
func FlipBit(vec mat.SparseVector, index int) {
	if !IndexIsValid(index, vec.Len()) {
		panic(violation("flip index %v outside [1, %v]", index, vec.Len()))
	}
	vec.Set(index-1, vec.At(index-1)+1)
}

package gf2

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestParityMatrix(t *testing.T) {
	expected := mat.CSRMat(4, 15,
		0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1,
		0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1,
		1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1,
	)

	actual := ParityMatrix()
	if !expected.Equals(actual) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}

	//changing the copy must not leak into the shared matrix
	actual.Set(0, 0, 1)
	if !expected.Equals(parity) {
		t.Fatalf("expected shared parity matrix to be unchanged")
	}
}

func TestHamming(t *testing.T) {
	tests := []struct {
		paritySymbols int
		expected      mat.SparseMat
	}{
		{2, mat.CSRMat(2, 3, 0, 1, 1, 1, 0, 1)},
		{3, mat.CSRMat(3, 7, 0, 0, 0, 1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Hamming(test.paritySymbols)
			if !test.expected.Equals(actual) {
				t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, actual)
			}
		})
	}
}

func TestValidateParityMatrix(t *testing.T) {
	broken := ParityMatrix()
	broken.Set(0, 0, 1)

	tests := []struct {
		H     mat.SparseMat
		valid bool
	}{
		{ParityMatrix(), true},
		{Hamming(3), false},
		{Hamming(5), false},
		{broken, false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := ValidateParityMatrix(test.H)
			if test.valid && err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !test.valid && err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestBitsToIndex(t *testing.T) {
	tests := []struct {
		vec      mat.SparseVector
		expected int
	}{
		{mat.CSRVec(4), 0},
		{mat.CSRVec(4, 0, 0, 0, 1), 1},
		{mat.CSRVec(4, 1, 0, 0, 0), 8},
		{mat.CSRVec(4, 1, 1, 1, 1), 15},
		{mat.CSRVec(4, 1, 0, 1, 0), 10},
		{mat.CSRVec(8, 1, 1, 1, 1, 0, 0, 0, 0), 240},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := BitsToIndex(test.vec)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestIndexToBits(t *testing.T) {
	for i := 0; i < 16; i++ {
		actual := BitsToIndex(IndexToBits(i, 4))
		if actual != i {
			t.Fatalf("expected %v but found %v", i, actual)
		}
	}
}

func TestIndexIsValid(t *testing.T) {
	tests := []struct {
		index, length int
		expected      bool
	}{
		{0, 15, false},
		{1, 15, true},
		{15, 15, true},
		{16, 15, false},
		{-1, 15, false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := IndexIsValid(test.index, test.length)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		vec      mat.SparseVector
		expected mat.SparseVector
	}{
		{mat.CSRVec(15), mat.CSRVec(4)},
		// a single one at position k has syndrome k
		{mat.CSRVec(15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0), mat.CSRVec(4, 1, 0, 1, 1)},
		// positions 1 and 2 cancel to 3 (01 xor 10)
		{mat.CSRVec(15, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0), mat.CSRVec(4, 0, 0, 1, 1)},
		// all ones: every row has 8 ones
		{mat.CSRVec(15, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1), mat.CSRVec(4)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Multiply(parity, test.vec)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestMultiplyLengthMismatch(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(InvariantViolation); !ok {
			t.Fatalf("expected InvariantViolation panic but found %v", r)
		}
	}()
	Multiply(parity, mat.CSRVec(14))
}

func TestFlipBit(t *testing.T) {
	vec := mat.CSRVec(15)
	FlipBit(vec, 15)
	if vec.At(14) != 1 {
		t.Fatalf("expected bit 15 set but found %v", vec)
	}
	FlipBit(vec, 15)
	if !vec.IsZero() {
		t.Fatalf("expected zero vector but found %v", vec)
	}
}

func BenchmarkSyndrome(b *testing.B) {
	window := mat.CSRVec(15, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 1, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Syndrome(window)
	}
}

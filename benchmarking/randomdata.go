package benchmarking

import (
	"math/rand"

	mat "github.com/nathanhack/sparsemat"
)

// RandomMessage creates a random bit vector of length len.
func RandomMessage(len int) mat.SparseVector {
	message := mat.CSRVec(len)
	for i := 0; i < len; i++ {
		message.Set(i, rand.Intn(2))
	}
	return message
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,len(input)) number of bits.
func RandomFlipBitCount(input mat.SparseVector, numberOfBitsToFlip int) mat.SparseVector {
	output := mat.CSRVecCopy(input)

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < input.Len() {
		flip[rand.Intn(input.Len())] = true
	}

	for i := range flip {
		output.Set(i, output.At(i)+1)
	}
	return output
}

// RandomFlipProbability flips every bit independently with probability crossoverProbability.
func RandomFlipProbability(input mat.SparseVector, crossoverProbability float64) mat.SparseVector {
	output := mat.CSRVecCopy(input)
	for i := 0; i < output.Len(); i++ {
		if rand.Float64() < crossoverProbability {
			output.Set(i, output.At(i)+1)
		}
	}
	return output
}

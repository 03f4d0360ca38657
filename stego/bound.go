package stego

import "fmt"

// BlockHeight is the number of vertically adjacent pixels that carry one secret pixel.
const BlockHeight = 4

// Bound decides which rows may start a block. Encoder and decoder must agree on it.
type Bound int

const (
	// InclusiveBound starts a block at every row y <= height-4, so every complete
	// 4-row block is used and only the rows of a trailing partial block are untouched.
	InclusiveBound Bound = iota
	// ExclusiveBound starts a block at every row y < height-4, skipping the last complete
	// block when the height is a multiple of 4. Use it to read images written that way.
	ExclusiveBound
)

func (b Bound) admits(row, height int) bool {
	switch b {
	case InclusiveBound:
		return row <= height-BlockHeight
	case ExclusiveBound:
		return row < height-BlockHeight
	default:
		panic(fmt.Sprintf("unknown bound %d", int(b)))
	}
}

func (b Bound) String() string {
	switch b {
	case InclusiveBound:
		return "inclusive"
	case ExclusiveBound:
		return "exclusive"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// BlocksPerColumn returns how many blocks a column of the given height holds.
func BlocksPerColumn(height int, bound Bound) int {
	count := 0
	for y := 0; bound.admits(y, height); y += BlockHeight {
		count++
	}
	return count
}

// Capacity returns the largest secret a width x height cover can carry in full.
// Secret rows at or past secretHeight are not embedded.
func Capacity(width, height int, bound Bound) (secretWidth, secretHeight int) {
	return width, BlocksPerColumn(height, bound)
}

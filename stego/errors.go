package stego

import "fmt"

// DimensionError is returned by Merge when the secret image is wider or taller than the cover.
type DimensionError struct {
	CoverWidth, CoverHeight   int
	SecretWidth, SecretHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("secret image (%vx%v) must not be larger than the cover image (%vx%v)",
		e.SecretWidth, e.SecretHeight, e.CoverWidth, e.CoverHeight)
}

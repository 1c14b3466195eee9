package cubiecube

import "errors"

// Sentinel errors for the cubiecube package.
var (
	// Validation errors
	ErrInvalidLength      = errors.New("cubiecube: wrong vector length")
	ErrInvalidPermutation = errors.New("cubiecube: not a permutation")
	ErrInvalidOrientation = errors.New("cubiecube: orientation out of range")

	// Lookup errors
	ErrUnknownMove = errors.New("cubiecube: unknown move")
)

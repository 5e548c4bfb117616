package puzzle

import "errors"

var (
	// ErrOrientationCount indicates a bulk orientation update whose length
	// differs from the piece count.
	ErrOrientationCount = errors.New("puzzle: orientation count does not match piece count")

	// ErrInvalidOrientation indicates an orientation that is not a
	// permutation of the full ray enumeration.
	ErrInvalidOrientation = errors.New("puzzle: orientation is not a permutation of the rays")
)

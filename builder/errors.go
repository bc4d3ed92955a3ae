package builder

import "errors"

var (
	// ErrTooFewVertices signals a size parameter below the minimum the
	// requested family needs (for example Cycle demands n >= 3).
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadProbability signals an edge probability outside [0, 1].
	ErrBadProbability = errors.New("builder: probability out of range")
)

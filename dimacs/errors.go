package dimacs

import "errors"

var (
	// ErrMissingProblem signals an edge line arriving before any problem line.
	ErrMissingProblem = errors.New("dimacs: edge line before problem line")

	// ErrDuplicateProblem signals a second problem line in one instance.
	ErrDuplicateProblem = errors.New("dimacs: duplicate problem line")

	// ErrMalformedLine signals a problem or edge line that does not parse.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrVertexRange signals an edge endpoint outside 1..N.
	ErrVertexRange = errors.New("dimacs: edge endpoint out of range")

	// ErrInstanceNotFound signals a repository lookup for a missing instance.
	ErrInstanceNotFound = errors.New("dimacs: instance not found")
)

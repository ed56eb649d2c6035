package domain

import "errors"

var (
	// ErrInvalidInput marks malformed puzzle text or conflicting givens,
	// rejected before any solving work.
	ErrInvalidInput = errors.New("invalid puzzle input")

	// ErrUnsolvable marks a well-formed puzzle whose branches are all
	// exhausted without a solution.
	ErrUnsolvable = errors.New("puzzle has no solution")

	// ErrTimeout marks a solve abandoned at a cooperative cancellation
	// point; distinct from ErrUnsolvable since branches remain untried.
	ErrTimeout = errors.New("solve canceled")
)

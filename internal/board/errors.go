package board

import "errors"

var (
	ErrInvalidSquare      = errors.New("invalid square")
	ErrEmptySquare        = errors.New("no piece on square")
	ErrInvalidPlacement   = errors.New("invalid placement")
	ErrInvariantViolation = errors.New("board invariant violated")
)

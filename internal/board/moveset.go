package board

import "math/bits"

// MoveSet is the set of destination squares a piece can reach.
// Bit n corresponds to Square(n).
type MoveSet uint64

// EmptyMoveSet contains no squares.
const EmptyMoveSet MoveSet = 0

// Add returns the set with sq included. Invalid squares are ignored.
func (ms MoveSet) Add(sq Square) MoveSet {
	if !sq.IsValid() {
		return ms
	}
	return ms | 1<<sq
}

// Contains returns true if sq is in the set.
func (ms MoveSet) Contains(sq Square) bool {
	return sq.IsValid() && ms&(1<<sq) != 0
}

// Len returns the number of squares in the set.
func (ms MoveSet) Len() int {
	return bits.OnesCount64(uint64(ms))
}

// Union returns the squares in either set.
func (ms MoveSet) Union(other MoveSet) MoveSet {
	return ms | other
}

// Squares returns the members in ascending index order.
func (ms MoveSet) Squares() []Square {
	squares := make([]Square, 0, ms.Len())
	for ms != 0 {
		squares = append(squares, Square(bits.TrailingZeros64(uint64(ms))))
		ms &= ms - 1
	}
	return squares
}

// Package board implements the chess board, move geometry and legality checks.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Index = rank*8 + file, where rank 0 is the top row (Black's back rank,
// algebraic rank 8) and rank 7 is White's back rank: A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the row of the square (0-7, where 0 is the top row).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '8'-sq.Rank())
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// SquareAt converts a file/rank pair into a Square.
// The second result is false when either coordinate is outside [0,8);
// move geometry runs every candidate through here before touching the board.
func SquareAt(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	sq, ok := SquareAt(int(s[0])-'a', '8'-int(s[1]))
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

// Offset returns the square reached by moving df files and dr ranks,
// or false if that lands off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	if !sq.IsValid() {
		return NoSquare, false
	}
	return SquareAt(sq.File()+df, sq.Rank()+dr)
}

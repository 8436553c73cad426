package board

import "fmt"

// Move is a from/to pair. It carries no flags: there is no castling,
// en passant or promotion on this board.
type Move struct {
	From Square
	To   Square
}

// NoMove represents an invalid or absent move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsValid returns true if both squares are on the board.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// String returns the coordinate form of the move (e.g., "e2e4").
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate move such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	return NewMove(from, to), nil
}

// IsCapture returns true if the destination currently holds a piece.
func (m Move) IsCapture(b *Board) bool {
	return !b.IsEmpty(m.To)
}

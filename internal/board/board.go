package board

import (
	"fmt"
	"strings"
)

// backRank is the piece order on each side's first rank, file a to h.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 mailbox board with the side to move and a pending
// selection. It is the single mutable object of a game.
type Board struct {
	squares    [64]Piece
	sideToMove Color
	selected   Square
}

// NewBoard creates a board holding the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Setup()
	return b
}

// NewEmptyBoard creates a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Setup resets the board to the standard starting position with White to move.
func (b *Board) Setup() {
	b.Clear()
	for file, pt := range backRank {
		b.squares[file] = NewPiece(pt, Black)
		b.squares[8+file] = NewPiece(Pawn, Black)
		b.squares[48+file] = NewPiece(Pawn, White)
		b.squares[56+file] = NewPiece(pt, White)
	}
}

// Clear empties the board, gives White the move and drops any selection.
func (b *Board) Clear() {
	*b = Board{
		sideToMove: White,
		selected:   NoSquare,
	}
}

// PieceAt returns the piece at the given square.
// The second result is false for an empty or invalid square.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	p := b.squares[sq]
	return p, !p.IsEmpty()
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return !ok
}

// SetPiece places a piece on a square, replacing any occupant.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	b.squares[sq] = p
	return nil
}

// RemovePiece clears a square and returns what was on it.
func (b *Board) RemovePiece(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	p := b.squares[sq]
	b.squares[sq] = NoPiece
	return p
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// SetSideToMove overrides the side to move. Used when building positions.
func (b *Board) SetSideToMove(c Color) {
	b.sideToMove = c
}

// Selected returns the pending selection, or NoSquare.
func (b *Board) Selected() Square {
	return b.selected
}

// Select records sq as the pending selection.
func (b *Board) Select(sq Square) {
	if !sq.IsValid() {
		sq = NoSquare
	}
	b.selected = sq
}

// ClearSelection drops the pending selection.
func (b *Board) ClearSelection() {
	b.selected = NoSquare
}

// ExecuteMove relocates the piece on from to to, capturing anything there,
// marks it moved and passes the turn. It does not check legality; callers
// must have done that. The pending selection is cleared.
func (b *Board) ExecuteMove(from, to Square) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %s-%s", ErrInvalidSquare, from, to)
	}
	p := b.squares[from]
	if p.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}

	p.Moved = true
	b.squares[from] = NoPiece
	b.squares[to] = p
	b.sideToMove = b.sideToMove.Other()
	b.selected = NoSquare
	return nil
}

// Clone returns an independent copy of the occupancy and side to move.
// The selection is not carried over.
func (b *Board) Clone() *Board {
	c := *b
	c.selected = NoSquare
	return &c
}

// Equal reports whether both boards have the same occupancy and side to move.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares && b.sideToMove == other.sideToMove
}

// KingSquares returns every square holding a king of color c.
func (b *Board) KingSquares(c Color) []Square {
	var kings []Square
	for sq := A8; sq < NoSquare; sq++ {
		p := b.squares[sq]
		if p.Type == King && p.Color == c {
			kings = append(kings, sq)
		}
	}
	return kings
}

// String returns a visual representation of the board, White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(&sb, "%d  ", 8-rank)
		for file := 0; file < 8; file++ {
			sq, _ := SquareAt(file, rank)
			p := b.squares[sq]
			if p.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.sideToMove)
	return sb.String()
}

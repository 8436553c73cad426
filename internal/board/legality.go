package board

import "fmt"

// Verdict is the outcome of checking a single proposed move.
type Verdict uint8

const (
	Legal Verdict = iota
	IllegalMove
	LeavesKingInCheck
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Legal:
		return "Legal"
	case IllegalMove:
		return "IllegalMove"
	case LeavesKingInCheck:
		return "LeavesKingInCheck"
	default:
		return "Unknown"
	}
}

// IsLegal decides whether moving the piece on from to to is allowed.
// The move must be in the piece's pseudo-legal set and, once played on a
// scratch copy, must not leave the mover's king attacked. The receiver is
// never modified.
//
// If the mover does not have exactly one king the verdict is IllegalMove and
// the error wraps ErrInvariantViolation.
func (b *Board) IsLegal(from, to Square) (Verdict, error) {
	p, ok := b.PieceAt(from)
	if !ok || !b.PseudoLegalMoves(from).Contains(to) {
		return IllegalMove, nil
	}

	scratch := b.Clone()
	if err := scratch.ExecuteMove(from, to); err != nil {
		return IllegalMove, err
	}

	attacked, _, err := scratch.kingAttacked(p.Color)
	if err != nil {
		return IllegalMove, err
	}
	if attacked {
		return LeavesKingInCheck, nil
	}
	return Legal, nil
}

// LegalMoves returns the destinations from sq that IsLegal accepts.
// Errors from a corrupted board produce an empty set.
func (b *Board) LegalMoves(sq Square) MoveSet {
	legal := EmptyMoveSet
	for _, to := range b.PseudoLegalMoves(sq).Squares() {
		if v, err := b.IsLegal(sq, to); err == nil && v == Legal {
			legal = legal.Add(to)
		}
	}
	return legal
}

// InCheck reports whether the king of color c is attacked and where it stands.
func (b *Board) InCheck(c Color) (bool, Square, error) {
	return b.kingAttacked(c)
}

// kingAttacked locates the single king of color c by scanning the board and
// tests it against every enemy piece's pseudo-legal moves.
func (b *Board) kingAttacked(c Color) (bool, Square, error) {
	kings := b.KingSquares(c)
	if len(kings) != 1 {
		return false, NoSquare, fmt.Errorf("%w: %s has %d kings", ErrInvariantViolation, c, len(kings))
	}
	king := kings[0]
	return b.AttackedBy(c.Other()).Contains(king), king, nil
}

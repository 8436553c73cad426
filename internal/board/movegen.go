package board

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var (
	orthogonals = []direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonals   = []direction{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	royals      = append(append([]direction{}, orthogonals...), diagonals...)

	knightJumps = []direction{
		{1, -2}, {2, -1}, {2, 1}, {1, 2},
		{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
	}
)

// PseudoLegalMoves returns the squares the piece on sq could move to,
// ignoring whose turn it is and whether the own king is left attacked.
// An invalid or empty origin yields the empty set.
func (b *Board) PseudoLegalMoves(sq Square) MoveSet {
	p, ok := b.PieceAt(sq)
	if !ok {
		return EmptyMoveSet
	}

	switch p.Type {
	case Pawn:
		return b.pawnMoves(sq, p)
	case Knight:
		return b.leaperMoves(sq, p.Color, knightJumps)
	case Bishop:
		return b.sliderMoves(sq, p.Color, diagonals)
	case Rook:
		return b.sliderMoves(sq, p.Color, orthogonals)
	case Queen:
		return b.sliderMoves(sq, p.Color, royals)
	case King:
		return b.leaperMoves(sq, p.Color, royals)
	default:
		return EmptyMoveSet
	}
}

// sliderMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func (b *Board) sliderMoves(from Square, us Color, dirs []direction) MoveSet {
	moves := EmptyMoveSet
	for _, d := range dirs {
		to, ok := from.Offset(d.df, d.dr)
		for ok {
			p := b.squares[to]
			if !p.IsEmpty() {
				if p.Color != us {
					moves = moves.Add(to)
				}
				break
			}
			moves = moves.Add(to)
			to, ok = to.Offset(d.df, d.dr)
		}
	}
	return moves
}

// leaperMoves tries each fixed offset once; own pieces block, enemies are captures.
func (b *Board) leaperMoves(from Square, us Color, jumps []direction) MoveSet {
	moves := EmptyMoveSet
	for _, d := range jumps {
		to, ok := from.Offset(d.df, d.dr)
		if !ok {
			continue
		}
		if p := b.squares[to]; p.IsEmpty() || p.Color != us {
			moves = moves.Add(to)
		}
	}
	return moves
}

// pawnMoves generates pushes and diagonal captures. There is no en passant
// and no promotion; a pawn on the last rank simply has no forward move.
func (b *Board) pawnMoves(from Square, p Piece) MoveSet {
	moves := EmptyMoveSet
	dir := p.Color.PawnDirection()

	if one, ok := from.Offset(0, dir); ok && b.squares[one].IsEmpty() {
		moves = moves.Add(one)
		if !p.Moved {
			if two, ok := from.Offset(0, 2*dir); ok && b.squares[two].IsEmpty() {
				moves = moves.Add(two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if target := b.squares[to]; !target.IsEmpty() && target.Color != p.Color {
			moves = moves.Add(to)
		}
	}

	return moves
}

// AttackedBy returns the union of pseudo-legal destinations of every piece of color c.
func (b *Board) AttackedBy(c Color) MoveSet {
	attacked := EmptyMoveSet
	for sq := A8; sq < NoSquare; sq++ {
		if p := b.squares[sq]; !p.IsEmpty() && p.Color == c {
			attacked = attacked.Union(b.PseudoLegalMoves(sq))
		}
	}
	return attacked
}

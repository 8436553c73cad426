package game

import "github.com/hailam/chessboard/internal/board"

// SquareView is what a presentation layer needs to draw one square.
type SquareView struct {
	Type  board.PieceType // board.NoPieceType when empty
	Color board.Color
}

// IsEmpty returns true if no piece stands on the square.
func (v SquareView) IsEmpty() bool {
	return v.Type == board.NoPieceType
}

// Snapshot is a read-only copy of everything a presentation layer renders.
type Snapshot struct {
	Squares    [64]SquareView
	SideToMove board.Color
	Status     string
	State      State

	// Selected is the pending selection and Hints its legal destinations.
	Selected board.Square
	Hints    board.MoveSet

	LastMove board.Move

	// CheckedKing is the side to move's king square when it is attacked,
	// board.NoSquare otherwise.
	CheckedKing board.Square
}

// Snapshot captures the current game state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		SideToMove:  c.board.SideToMove(),
		Status:      c.status,
		State:       c.state(),
		Selected:    c.board.Selected(),
		LastMove:    c.lastMove,
		CheckedKing: board.NoSquare,
	}

	for sq := board.A8; sq < board.NoSquare; sq++ {
		if p, ok := c.board.PieceAt(sq); ok {
			s.Squares[sq] = SquareView{Type: p.Type, Color: p.Color}
		}
	}

	if s.Selected != board.NoSquare {
		s.Hints = c.board.LegalMoves(s.Selected)
	}

	if inCheck, king, err := c.board.InCheck(s.SideToMove); err == nil && inCheck {
		s.CheckedKing = king
	}

	return s
}

// PieceAt returns the view of a single square.
func (s Snapshot) PieceAt(sq board.Square) SquareView {
	if !sq.IsValid() {
		return SquareView{}
	}
	return s.Squares[sq]
}

package storage

import (
	"fmt"

	"github.com/hailam/chessboard/internal/board"
)

// NewSavedGame captures b and the move that led to it.
func NewSavedGame(b *board.Board, lastMove board.Move) *SavedGame {
	g := &SavedGame{Placement: b.Placement()}
	if lastMove.IsValid() {
		g.LastMove = lastMove.String()
	}
	return g
}

// Restore rebuilds the board and last move. Only pawns need their moved flag
// back, and a pawn can never return to its home rank, so the placement
// carries everything the rules look at.
func (g *SavedGame) Restore() (*board.Board, board.Move, error) {
	b, err := board.ParsePlacement(g.Placement)
	if err != nil {
		return nil, board.NoMove, fmt.Errorf("saved game: %w", err)
	}

	last := board.NoMove
	if g.LastMove != "" {
		last, err = board.ParseMove(g.LastMove)
		if err != nil {
			return nil, board.NoMove, fmt.Errorf("saved game: %w", err)
		}
	}
	return b, last, nil
}

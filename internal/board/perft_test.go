package board

import "testing"

// perft counts the leaf nodes of the legal move tree to the given depth.
func perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	us := b.SideToMove()
	for from := A8; from < NoSquare; from++ {
		p, ok := b.PieceAt(from)
		if !ok || p.Color != us {
			continue
		}
		moves := b.LegalMoves(from)
		if depth == 1 {
			nodes += int64(moves.Len())
			continue
		}
		for _, to := range moves.Squares() {
			child := b.Clone()
			if err := child.ExecuteMove(from, to); err != nil {
				panic(err)
			}
			nodes += perft(child, depth-1)
		}
	}
	return nodes
}

// TestPerftStartingPosition checks the move tree from the starting position.
// Castling, en passant and promotion cannot occur within four plies, so the
// standard counts apply unchanged.
func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		if tc.depth > 3 && testing.Short() {
			continue
		}
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition3 checks a rook-and-pawn endgame with pins along the fifth rank.
// FEN: 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -
func TestPerftPosition3(t *testing.T) {
	b, err := ParsePlacement("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w")
	if err != nil {
		t.Fatalf("Failed to parse placement: %v", err)
	}

	if got := perft(b, 1); got != 14 {
		t.Errorf("perft(1) = %d, want 14", got)
	}
}

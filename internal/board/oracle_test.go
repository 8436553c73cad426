package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// fromDragontooth converts a dragontoothmg square index (a1=0, h8=63).
func fromDragontooth(idx uint8) Square {
	sq, _ := SquareAt(int(idx%8), 7-int(idx/8))
	return sq
}

// legalMoveStrings lists every legal move of the side to move, sorted.
func legalMoveStrings(b *Board) []string {
	var moves []string
	us := b.SideToMove()
	for from := A8; from < NoSquare; from++ {
		if p, ok := b.PieceAt(from); !ok || p.Color != us {
			continue
		}
		for _, to := range b.LegalMoves(from).Squares() {
			moves = append(moves, NewMove(from, to).String())
		}
	}
	slices.Sort(moves)
	return moves
}

// oracleMoveStrings asks dragontoothmg for the same list. Promotions collapse
// to their from/to pair since this board has no promotion.
func oracleMoveStrings(placement string) []string {
	ref := dragontoothmg.ParseFen(placement + " - - 0 1")
	var moves []string
	for _, m := range ref.GenerateLegalMoves() {
		s := NewMove(fromDragontooth(m.From()), fromDragontooth(m.To())).String()
		if !slices.Contains(moves, s) {
			moves = append(moves, s)
		}
	}
	slices.Sort(moves)
	return moves
}

// TestLegalMovesMatchReference compares whole-position move lists with an
// independent bitboard generator on positions where castling and en passant
// are unavailable.
func TestLegalMovesMatchReference(t *testing.T) {
	placements := []string{
		StartPlacement,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b",
		"4k3/4r3/8/8/8/8/4B3/4K3 w",
		"4k3/8/8/8/8/1n6/3q4/4K3 w",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b",
	}

	for _, s := range placements {
		t.Run(s, func(t *testing.T) {
			b := mustPlacement(t, s)
			got := legalMoveStrings(b)
			want := oracleMoveStrings(s)
			if !slices.Equal(got, want) {
				t.Errorf("legal moves differ\n got: %v\nwant: %v", got, want)
			}
		})
	}
}

package board

import (
	"errors"
	"testing"
)

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

func mustPlacement(t *testing.T, s string) *Board {
	t.Helper()
	b, err := ParsePlacement(s)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", s, err)
	}
	return b
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		name       string
		sq         Square
		file, rank int
	}{
		{"a8", A8, 0, 0},
		{"h8", H8, 7, 0},
		{"e2", E2, 4, 6},
		{"e4", E4, 4, 4},
		{"a1", A1, 0, 7},
		{"h1", H1, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustSquare(t, tc.name); got != tc.sq {
				t.Errorf("ParseSquare(%q) = %d, want %d", tc.name, got, tc.sq)
			}
			if tc.sq.String() != tc.name {
				t.Errorf("String() = %q, want %q", tc.sq.String(), tc.name)
			}
			if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
				t.Errorf("File/Rank = %d/%d, want %d/%d", tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestSquareAtRejectsOffBoard(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 9}} {
		if sq, ok := SquareAt(c[0], c[1]); ok || sq != NoSquare {
			t.Errorf("SquareAt(%d, %d) = %v, %v; want NoSquare, false", c[0], c[1], sq, ok)
		}
	}
	if _, ok := H1.Offset(1, 0); ok {
		t.Error("h1 offset by one file should leave the board")
	}
	if sq, ok := E2.Offset(0, -2); !ok || sq != E4 {
		t.Errorf("e2 two ranks up = %v, %v; want e4", sq, ok)
	}
}

func TestInitialSetup(t *testing.T) {
	b := NewBoard()
	t.Log(b)

	if b.SideToMove() != White {
		t.Errorf("side to move = %v, want White", b.SideToMove())
	}
	if b.Selected() != NoSquare {
		t.Errorf("selection = %v, want none", b.Selected())
	}

	checks := map[Square]Piece{
		A1: NewPiece(Rook, White),
		B1: NewPiece(Knight, White),
		C1: NewPiece(Bishop, White),
		D1: NewPiece(Queen, White),
		E1: NewPiece(King, White),
		E2: NewPiece(Pawn, White),
		A8: NewPiece(Rook, Black),
		D8: NewPiece(Queen, Black),
		E8: NewPiece(King, Black),
		H7: NewPiece(Pawn, Black),
	}
	for sq, want := range checks {
		if got, ok := b.PieceAt(sq); !ok || got != want {
			t.Errorf("PieceAt(%v) = %v, %v; want %v", sq, got, ok, want)
		}
	}

	count := 0
	for sq := A8; sq < NoSquare; sq++ {
		if !b.IsEmpty(sq) {
			count++
		}
	}
	if count != 32 {
		t.Errorf("piece count = %d, want 32", count)
	}

	if b.Placement() != StartPlacement {
		t.Errorf("Placement() = %q, want %q", b.Placement(), StartPlacement)
	}
}

func TestPieceAtInvalidSquare(t *testing.T) {
	b := NewBoard()
	if p, ok := b.PieceAt(NoSquare); ok || !p.IsEmpty() {
		t.Errorf("PieceAt(NoSquare) = %v, %v; want empty", p, ok)
	}
}

func TestExecuteMove(t *testing.T) {
	b := NewBoard()
	b.Select(E2)

	if err := b.ExecuteMove(E2, E4); err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}

	p, ok := b.PieceAt(E4)
	if !ok || p.Type != Pawn || p.Color != White || !p.Moved {
		t.Errorf("e4 = %+v, want moved white pawn", p)
	}
	if !b.IsEmpty(E2) {
		t.Error("e2 should be empty")
	}
	if b.SideToMove() != Black {
		t.Errorf("side to move = %v, want Black", b.SideToMove())
	}
	if b.Selected() != NoSquare {
		t.Error("selection should be cleared after a move")
	}

	// Capture overwrites the destination.
	if err := b.ExecuteMove(D8, E4); err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if p, _ := b.PieceAt(E4); p.Type != Queen || p.Color != Black {
		t.Errorf("e4 = %+v, want black queen", p)
	}
	if b.SideToMove() != White {
		t.Errorf("side to move = %v, want White", b.SideToMove())
	}
}

func TestExecuteMoveErrors(t *testing.T) {
	b := NewBoard()
	before := b.Clone()

	if err := b.ExecuteMove(E4, E5); !errors.Is(err, ErrEmptySquare) {
		t.Errorf("empty origin error = %v, want ErrEmptySquare", err)
	}
	if err := b.ExecuteMove(E2, NoSquare); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("invalid destination error = %v, want ErrInvalidSquare", err)
	}
	if !b.Equal(before) {
		t.Error("failed ExecuteMove changed the board")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Select(G1)

	c := b.Clone()
	if !c.Equal(b) {
		t.Fatal("clone should equal original")
	}
	if c.Selected() != NoSquare {
		t.Error("clone should not carry the selection")
	}

	if err := c.ExecuteMove(G1, F3); err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if c.Equal(b) {
		t.Error("clone and original should differ after moving on the clone")
	}
	if p, _ := b.PieceAt(G1); p.Type != Knight {
		t.Error("original lost its knight")
	}
	if b.Selected() != G1 {
		t.Error("original selection changed")
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	tests := []string{
		StartPlacement,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b",
		"4k3/8/8/8/8/8/8/4K3 w",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			b := mustPlacement(t, s)
			if got := b.Placement(); got != s {
				t.Errorf("Placement() = %q, want %q", got, s)
			}
		})
	}
}

func TestParsePlacementMarksAdvancedPawns(t *testing.T) {
	b := mustPlacement(t, "4k3/3p4/8/2p5/4P3/8/P7/4K3 w")

	tests := []struct {
		sq    Square
		moved bool
	}{
		{A2, false},
		{E4, true},
		{D7, false},
		{C5, true},
		{E1, false},
	}
	for _, tc := range tests {
		if p, _ := b.PieceAt(tc.sq); p.Moved != tc.moved {
			t.Errorf("%v moved = %v, want %v", tc.sq, p.Moved, tc.moved)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
	}

	for _, s := range tests {
		if _, err := ParsePlacement(s); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("ParsePlacement(%q) error = %v, want ErrInvalidPlacement", s, err)
		}
	}
}

func TestMoveParse(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.From != E2 || m.To != E4 {
		t.Errorf("ParseMove(e2e4) = %v", m)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q", m.String())
	}
	if NoMove.String() != "0000" {
		t.Errorf("NoMove.String() = %q", NoMove.String())
	}
	if _, err := ParseMove("e2e9"); err == nil {
		t.Error("expected error for e2e9")
	}
}

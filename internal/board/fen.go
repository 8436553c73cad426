package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the placement string for the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// ParsePlacement parses the first two FEN fields (piece placement and side
// to move) into a Board. Any further fields are ignored. Pawns found off
// their home rank are marked as moved; other pieces are not.
func ParsePlacement(s string) (*Board, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need placement and side to move, got %d fields", ErrInvalidPlacement, len(parts))
	}

	b := NewEmptyBoard()
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidPlacement, parts[1])
	}

	return b, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}

	for rank, rankStr := range ranks {
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidPlacement, 8-rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece.IsEmpty() {
				return fmt.Errorf("%w: piece character %q", ErrInvalidPlacement, c)
			}
			if piece.Type == Pawn && rank != pawnHomeRank(piece.Color) {
				piece.Moved = true
			}
			sq, _ := SquareAt(file, rank)
			b.squares[sq] = piece
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidPlacement, 8-rank, file)
		}
	}

	return nil
}

// pawnHomeRank returns the row pawns of color c start on.
func pawnHomeRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// Placement encodes the board as "<piece placement> <side to move>".
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := SquareAt(file, rank)
			p := b.squares[sq]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}

	return sb.String()
}

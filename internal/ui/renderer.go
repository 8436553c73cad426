package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/game"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	WarningColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		WarningColor:   color.RGBA{240, 190, 80, 255},
	}
}

// ThemeFromConfig overrides the square colours with the configured ones.
// Colours that fail to parse keep their defaults.
func ThemeFromConfig(t config.Theme) *Theme {
	theme := DefaultTheme()
	if c, err := config.ParseColor(t.LightSquare); err == nil {
		theme.LightSquare = c
	}
	if c, err := config.ParseColor(t.DarkSquare); err == nil {
		theme.DarkSquare = c
	}
	return theme
}

// Geometry maps between board squares and logical screen pixels.
// The board's top-left corner is at (0, 0).
type Geometry struct {
	SquareSize int
	// Flipped puts Black's pieces at the bottom.
	Flipped bool
}

// BoardSize returns the board's side length in pixels.
func (g Geometry) BoardSize() int {
	return 8 * g.SquareSize
}

// SquareToScreen returns the top-left pixel of sq.
func (g Geometry) SquareToScreen(sq board.Square) (int, int) {
	col, row := sq.File(), sq.Rank()
	if g.Flipped {
		col, row = 7-col, 7-row
	}
	return col * g.SquareSize, row * g.SquareSize
}

// ScreenToSquare returns the board coordinates under a pixel. Pixels outside
// the board give coordinates outside 0..7, which callers treat as a miss.
func (g Geometry) ScreenToSquare(x, y int) (file, rank int) {
	col, row := g.cell(x), g.cell(y)
	if g.Flipped {
		return 7 - col, 7 - row
	}
	return col, row
}

func (g Geometry) cell(v int) int {
	if v < 0 || g.SquareSize <= 0 {
		return -1
	}
	return v / g.SquareSize
}

// Renderer handles all drawing operations.
type Renderer struct {
	Geometry
	sprites *SpriteManager
	theme   *Theme
	scale   float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int, theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		Geometry: Geometry{SquareSize: squareSize},
		sprites:  NewSpriteManager(squareSize),
		theme:    theme,
		scale:    1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped chooses which side is drawn at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.Flipped = flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the chess board squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for sq := board.A8; sq < board.NoSquare; sq++ {
		x, y := r.SquareToScreen(sq)

		// a1 is dark: file 0 with rank index 7.
		c := r.theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			c = r.theme.DarkSquare
		}

		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.SquareSize), r.s(r.SquareSize), c, false)
	}

	r.drawCoordinates(screen)
}

// drawCoordinates labels files along the bottom edge and ranks along the left.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(float64(r.SquareSize) * 0.16 * r.scale)
	if face == nil {
		return
	}
	pad := float64(r.SquareSize) * 0.05

	for i := 0; i < 8; i++ {
		// Bottom row labels the files, left column the ranks.
		fileSq, _ := board.SquareAt(i, 7)
		rankSq, _ := board.SquareAt(0, i)
		if r.Flipped {
			fileSq, _ = board.SquareAt(7-i, 0)
			rankSq, _ = board.SquareAt(7, 7-i)
		}

		fx, fy := r.SquareToScreen(fileSq)
		op := &text.DrawOptions{}
		op.GeoM.Translate((float64(fx+r.SquareSize)-pad*3)*r.scale, (float64(fy+r.SquareSize)-pad*4)*r.scale)
		op.ColorScale.ScaleWithColor(r.labelColor(fileSq))
		text.Draw(screen, fileSq.String()[:1], face, op)

		rx, ry := r.SquareToScreen(rankSq)
		op = &text.DrawOptions{}
		op.GeoM.Translate((float64(rx)+pad)*r.scale, (float64(ry)+pad)*r.scale)
		op.ColorScale.ScaleWithColor(r.labelColor(rankSq))
		text.Draw(screen, rankSq.String()[1:], face, op)
	}
}

// labelColor picks the opposite square colour so labels stay readable.
func (r *Renderer) labelColor(sq board.Square) color.RGBA {
	if (sq.File()+sq.Rank())%2 == 1 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// DrawHighlights draws the last move, the selection and, when showHints is
// set, the selection's legal destinations.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, snap game.Snapshot, showHints bool) {
	if snap.LastMove.IsValid() {
		r.highlightSquare(screen, snap.LastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, snap.LastMove.To, r.theme.LastMoveColor)
	}

	if snap.Selected != board.NoSquare {
		r.highlightSquare(screen, snap.Selected, r.theme.SelectedSquare)
	}

	if showHints {
		for _, sq := range snap.Hints.Squares() {
			r.drawLegalMoveIndicator(screen, sq, !snap.PieceAt(sq).IsEmpty())
		}
	}
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	if kingSq != board.NoSquare {
		r.highlightSquare(screen, kingSq, r.theme.CheckColor)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.SquareSize), r.s(r.SquareSize), c, false)
}

// drawLegalMoveIndicator draws a dot on an empty target and a ring around
// a capturable piece.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square, capture bool) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.SquareSize)/2
	cy := r.s(y) + r.s(r.SquareSize)/2

	if capture {
		radius := r.s(r.SquareSize) * 0.45
		vector.StrokeCircle(screen, cx, cy, radius, r.s(r.SquareSize)*0.08, r.theme.LegalMoveColor, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, r.s(r.SquareSize)*0.15, r.theme.LegalMoveColor, true)
}

// DrawPieces draws all pieces, shifting any that are shaking.
func (r *Renderer) DrawPieces(screen *ebiten.Image, snap game.Snapshot, anims *AnimationManager) {
	for sq := board.A8; sq < board.NoSquare; sq++ {
		v := snap.PieceAt(sq)
		if v.IsEmpty() {
			continue
		}

		x, y := r.SquareToScreen(sq)
		fx, fy := float64(x), float64(y)
		if anims != nil {
			dx, dy := anims.GetShakeOffset(sq)
			fx += dx
			fy += dy
		}

		r.sprites.DrawPieceAt(screen, v.Type, v.Color, fx*r.scale, fy*r.scale)
	}
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

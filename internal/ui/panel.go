package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// Panel dimensions
const (
	PanelHeight  = 56
	PanelPadding = 12
	ButtonWidth  = 64
	ButtonHeight = 32
)

// Panel colors
var (
	panelBg        = color.RGBA{38, 40, 45, 255}
	buttonBg       = color.RGBA{50, 54, 60, 255}
	buttonHoverBg  = color.RGBA{65, 70, 78, 255}
	buttonActiveBg = color.RGBA{76, 132, 96, 255}
	buttonBorder   = color.RGBA{70, 75, 82, 255}
	accentColor    = color.RGBA{76, 175, 120, 255}
	textPrimary    = color.RGBA{240, 240, 245, 255}
	textSecondary  = color.RGBA{160, 165, 175, 255}
	statusWarning  = color.RGBA{255, 200, 80, 255}
	statusError    = color.RGBA{255, 110, 110, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	// Active, when set, reports whether the button shows as toggled on.
	Active  func() bool
	hovered bool
}

func (b *Button) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Panel is the strip under the board with the turn, the status message and
// the game buttons.
type Panel struct {
	game    *Game
	top     int // y of the strip, equal to the board size
	width   int
	buttons []*Button
}

// NewPanel creates a panel below a board of boardSize pixels.
func NewPanel(g *Game, boardSize int) *Panel {
	p := &Panel{game: g, top: boardSize, width: boardSize}

	y := p.top + (PanelHeight-ButtonHeight)/2
	x := p.width - PanelPadding - ButtonWidth
	for _, b := range []*Button{
		{Label: "Flip", OnClick: g.FlipAction, Active: g.Flipped},
		{Label: "Hints", OnClick: g.ToggleHintsAction, Active: g.HintsShown},
		{Label: "New", OnClick: g.NewGameAction},
	} {
		b.X, b.Y, b.W, b.H = x, y, ButtonWidth, ButtonHeight
		p.buttons = append(p.buttons, b)
		x -= ButtonWidth + PanelPadding/2
	}
	return p
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()
	handled := false
	for _, b := range p.buttons {
		b.hovered = b.contains(mx, my)
		if b.hovered && input.IsLeftJustPressed() {
			b.OnClick()
			handled = true
		}
	}
	return handled
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, b := range p.buttons {
		if b.hovered {
			return true
		}
	}
	return false
}

// statusLine returns the text shown under the board and its colour.
func statusLine(snap game.Snapshot) (string, color.RGBA) {
	switch {
	case snap.Status == game.StatusCorrupted:
		return snap.Status, statusError
	case snap.Status != game.StatusNone:
		return snap.Status, statusWarning
	case snap.CheckedKing != board.NoSquare:
		return snap.SideToMove.String() + " to move, in check", statusWarning
	default:
		return snap.SideToMove.String() + " to move", textPrimary
	}
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, snap game.Snapshot, scale float64) {
	s := func(v int) float32 { return float32(float64(v) * scale) }

	vector.DrawFilledRect(screen, 0, s(p.top), s(p.width), s(PanelHeight), panelBg, false)

	// Turn indicator
	cx, cy := s(PanelPadding+10), s(p.top+PanelHeight/2)
	turn := color.RGBA{245, 245, 245, 255}
	if snap.SideToMove == board.Black {
		turn = color.RGBA{20, 20, 20, 255}
	}
	vector.DrawFilledCircle(screen, cx, cy, s(9), turn, true)
	vector.StrokeCircle(screen, cx, cy, s(9), s(1), textSecondary, true)

	msg, c := statusLine(snap)
	p.drawText(screen, msg, PanelPadding+28, p.top+PanelHeight/2, c, scale)

	for _, b := range p.buttons {
		p.drawButton(screen, b, scale)
	}
}

func (p *Panel) drawButton(screen *ebiten.Image, b *Button, scale float64) {
	s := func(v int) float32 { return float32(float64(v) * scale) }

	bg := buttonBg
	if b.Active != nil && b.Active() {
		bg = buttonActiveBg
	} else if b.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, s(b.X), s(b.Y), s(b.W), s(b.H), bg, false)

	border := buttonBorder
	if b.hovered {
		border = accentColor
	}
	vector.StrokeRect(screen, s(b.X), s(b.Y), s(b.W), s(b.H), 1, border, false)

	face := GetFaceWithSize(defaultFontSize * scale)
	if face == nil {
		return
	}
	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s(b.X+b.W/2))-w/2, float64(s(b.Y+b.H/2))-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, b.Label, face, op)
}

// drawText draws s left-aligned at x and vertically centred on centerY.
func (p *Panel) drawText(screen *ebiten.Image, s string, x, centerY int, c color.Color, scale float64) {
	face := GetBoldFaceWithSize(statusFontSize * scale)
	if face == nil {
		return
	}
	_, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)*scale, float64(centerY)*scale-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

package ui

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

// Game implements ebiten.Game interface.
type Game struct {
	ctrl *game.Controller
	cfg  *config.Config

	// Storage is optional; nil runs without persistence.
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	showHints bool

	// HiDPI scaling
	scale float64
}

// NewGame creates the window's game from the settings and an optional store.
// A saved game is resumed when the settings ask for it.
func NewGame(cfg *config.Config, store *storage.Storage) *Game {
	audio := NewAudioManager(cfg.Sound.Enabled)
	audio.SetVolume(cfg.Sound.Volume)

	g := &Game{
		ctrl:     game.NewController(),
		cfg:      cfg,
		storage:  store,
		renderer: NewRenderer(cfg.Window.SquareSize, ThemeFromConfig(cfg.Theme)),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(audio),
		scale:    1.0,
	}
	g.panel = NewPanel(g, g.renderer.BoardSize())

	g.loadPreferences()
	if cfg.Storage.Resume {
		g.resumeGame()
	}

	return g
}

// WindowSize returns the unscaled window size for the configured squares.
func WindowSize(cfg *config.Config) (int, int) {
	side := 8 * cfg.Window.SquareSize
	return side, side + PanelHeight
}

// loadPreferences applies stored preferences. On first launch the settings
// file provides them instead.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	g.prefs.ShowHints = g.cfg.Board.ShowHints
	g.prefs.Flipped = g.cfg.Board.Flipped

	if g.storage != nil {
		isFirst, err := g.storage.IsFirstLaunch()
		switch {
		case err != nil:
			log.Printf("[STORAGE] Warning: Failed to check first launch: %v", err)
		case isFirst:
			if err := g.storage.MarkFirstLaunchComplete(); err != nil {
				log.Printf("[STORAGE] Warning: Failed to mark first launch complete: %v", err)
			}
		default:
			prefs, err := g.storage.LoadPreferences()
			if err != nil {
				log.Printf("[STORAGE] Warning: Failed to load preferences: %v", err)
			} else {
				g.prefs = prefs
			}
		}
	}

	g.showHints = g.prefs.ShowHints
	g.renderer.SetFlipped(g.prefs.Flipped)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.ShowHints = g.showHints
	g.prefs.Flipped = g.renderer.Flipped

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("[STORAGE] Warning: Failed to save preferences: %v", err)
	}
}

// resumeGame restores the saved game, if any.
func (g *Game) resumeGame() {
	if g.storage == nil {
		return
	}

	saved, err := g.storage.LoadGame()
	if errors.Is(err, storage.ErrNoSavedGame) {
		return
	}
	if err != nil {
		log.Printf("[STORAGE] Warning: Failed to load saved game: %v", err)
		return
	}

	b, last, err := saved.Restore()
	if err != nil {
		log.Printf("[STORAGE] Warning: Discarding saved game: %v", err)
		return
	}
	g.ctrl.Restore(b, last)
	log.Printf("[STORAGE] Resumed game from %s", saved.SavedAt.Format("2006-01-02 15:04"))
}

// saveGame stores the game in progress.
func (g *Game) saveGame() {
	if g.storage == nil {
		return
	}
	saved := storage.NewSavedGame(g.ctrl.Board(), g.ctrl.LastMove())
	if err := g.storage.SaveGame(saved); err != nil {
		log.Printf("[STORAGE] Warning: Failed to save game: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleKeys()

	if g.input.IsLeftJustPressed() {
		g.clickBoard(g.input.MousePosition())
	}

	g.updateCursor()
	return nil
}

// handleKeys processes the keyboard shortcuts.
func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyH):
		g.ToggleHintsAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.FlipAction()
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.CancelSelectionAction()
	}
}

// clickBoard forwards a click at logical pixel (x, y) to the controller.
// Clicks below the board are ignored here; the panel owns that strip.
func (g *Game) clickBoard(x, y int) game.Outcome {
	if y >= g.renderer.BoardSize() {
		return game.Ignored
	}

	file, rank := g.renderer.ScreenToSquare(x, y)
	target, ok := board.SquareAt(file, rank)
	if !ok {
		return game.Ignored
	}

	before := g.ctrl.Snapshot()
	o := g.ctrl.SelectAt(file, rank)
	g.feedback.OnOutcome(o, target, before, g.ctrl.Snapshot())
	return o
}

// updateCursor shows a pointer over buttons and over pieces that can move.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}

	mx, my := g.input.MousePosition()
	file, rank := g.renderer.ScreenToSquare(mx, my)
	shape := ebiten.CursorShapeDefault
	if sq, ok := board.SquareAt(file, rank); ok && my < g.renderer.BoardSize() {
		snap := g.ctrl.Snapshot()
		if v := snap.PieceAt(sq); !v.IsEmpty() && v.Color == snap.SideToMove {
			shape = ebiten.CursorShapePointer
		}
	}
	ebiten.SetCursorShape(shape)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	snap := g.ctrl.Snapshot()

	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawCheck(screen, snap.CheckedKing)
	g.renderer.DrawHighlights(screen, snap, g.showHints)
	g.renderer.DrawPieces(screen, snap, g.feedback.Animations())

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen, snap, g.scale)
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 2.0 on Retina, 1.0 on standard displays
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	g.input.SetScale(g.scale)

	w, h := WindowSize(g.cfg)
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

// NewGameAction resets the board to the starting position.
func (g *Game) NewGameAction() {
	g.ctrl.NewGame()
	g.feedback.Toasts().Show("New game", ToastInfo, 1500*time.Millisecond)
}

// ToggleHintsAction shows or hides legal move hints.
func (g *Game) ToggleHintsAction() {
	g.showHints = !g.showHints
	g.savePreferences()
}

// FlipAction turns the board around.
func (g *Game) FlipAction() {
	g.renderer.SetFlipped(!g.renderer.Flipped)
	g.savePreferences()
}

// CancelSelectionAction drops the pending selection by clicking it again.
func (g *Game) CancelSelectionAction() {
	if sel := g.ctrl.Snapshot().Selected; sel != board.NoSquare {
		g.ctrl.Select(sel)
	}
}

// HintsShown reports whether legal move hints are drawn.
func (g *Game) HintsShown() bool {
	return g.showHints
}

// Flipped reports whether Black is drawn at the bottom.
func (g *Game) Flipped() bool {
	return g.renderer.Flipped
}

// Controller returns the game controller.
func (g *Game) Controller() *game.Controller {
	return g.ctrl
}

// Close saves the game and preferences and closes storage.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	g.saveGame()
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		log.Printf("[STORAGE] Warning: Failed to close storage: %v", err)
	}
}

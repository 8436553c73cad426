package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int // Logical coordinates (unscaled)
	leftJustPressed bool
	scale           float64
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{scale: 1.0}
}

// SetScale sets the HiDPI factor between cursor and logical coordinates.
func (ih *InputHandler) SetScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	ih.scale = scale
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	// Cursor positions arrive in device pixels.
	rawX, rawY := ebiten.CursorPosition()
	ih.mouseX = int(float64(rawX) / ih.scale)
	ih.mouseY = int(float64(rawY) / ih.scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

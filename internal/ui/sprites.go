// Package ui draws the board in an Ebitengine window and turns mouse clicks
// into square selections for a game controller.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

type spriteKey struct {
	pieceType board.PieceType
	color     board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Logical size of one square
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale sets the HiDPI scale factor used when drawing.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// assetPath returns the embedded file for a piece, e.g. "assets/pieces/wN.svg".
func assetPath(pt board.PieceType, c board.Color) string {
	side := 'w'
	if c == board.Black {
		side = 'b'
	}
	return fmt.Sprintf("assets/pieces/%c%c.svg", side, board.NewPiece(pt, board.White).String()[0])
}

// loadPieces loads all piece sprites from embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			path := assetPath(pt, c)
			img, err := rasterizePiece(path, renderSize)
			if err != nil {
				log.Printf("Failed to load piece asset %s: %v", path, err)
				continue
			}
			sm.pieces[spriteKey{pt, c}] = ebiten.NewImageFromImage(img)
		}
	}
}

// rasterizePiece renders one embedded SVG into a size x size RGBA image.
func rasterizePiece(path string, size int) (*image.RGBA, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DrawPieceAt draws a piece with its top-left corner at device pixel (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, pt board.PieceType, c board.Color, x, y float64) {
	sprite := sm.pieces[spriteKey{pt, c}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := sm.scale / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cavern/internal/application/scene"
)

// maxFrameMS caps the per-tick elapsed time handed to scenes so a stalled
// frame cannot produce a large integration step.
const maxFrameMS = 5 * 1000.0 / 60.0

// Game implements ebiten.Game and manages Scene transitions. It runs a
// fixed millisecond step derived from the configured framerate.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	elapsedMS float64
}

// New creates a new Game with the given initial scene and framerate.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, framerate int) *Game {
	g := &Game{
		current:   initialScene,
		screenW:   screenW,
		screenH:   screenH,
		elapsedMS: math.Min(1000.0/float64(framerate), maxFrameMS),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.elapsedMS)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetElapsedMS overrides the per-tick step. Useful for testing.
func (g *Game) SetElapsedMS(elapsedMS float64) {
	g.elapsedMS = elapsedMS
}

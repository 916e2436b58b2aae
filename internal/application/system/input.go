package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard into an InputState once per tick.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state: held levels for the directions
// and edge events for the jump, delivered at most once per tick.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	JumpPressed  bool
	JumpReleased bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:           ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyZ),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyZ),
	}
}

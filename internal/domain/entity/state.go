package entity

// MotionType is the discrete motion classification of an actor.
type MotionType int

const (
	MotionStanding MotionType = iota
	MotionWalking
	MotionInteracting
	MotionJumping
	MotionFalling
)

// String returns the string representation of the motion type.
func (m MotionType) String() string {
	switch m {
	case MotionStanding:
		return "Standing"
	case MotionWalking:
		return "Walking"
	case MotionInteracting:
		return "Interacting"
	case MotionJumping:
		return "Jumping"
	case MotionFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// HorizontalFacing is the left/right facing of an actor.
type HorizontalFacing int

const (
	FacingLeft HorizontalFacing = iota
	FacingRight
)

// String returns the string representation of the horizontal facing.
func (f HorizontalFacing) String() string {
	if f == FacingRight {
		return "Right"
	}
	return "Left"
}

// VerticalFacing is the up/down/neutral aim of an actor.
type VerticalFacing int

const (
	FacingHorizontal VerticalFacing = iota
	FacingUp
	FacingDown
)

// String returns the string representation of the vertical facing.
func (f VerticalFacing) String() string {
	switch f {
	case FacingUp:
		return "Up"
	case FacingDown:
		return "Down"
	default:
		return "Horizontal"
	}
}

// SpriteState is the composite visual-state key: the renderer selects a
// frame from motion type and both facings. Comparable, usable as a map key.
type SpriteState struct {
	Motion     MotionType
	Horizontal HorizontalFacing
	Vertical   VerticalFacing
}

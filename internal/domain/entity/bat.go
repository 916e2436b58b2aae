package entity

import "math"

// BatParams holds the tuning for the cave bat.
type BatParams struct {
	// AngularVelocity is the flight angle change in degrees per millisecond.
	AngularVelocity float64
	// Amplitude is the vertical flight amplitude in world units.
	Amplitude float64
	// BodySize is the edge length of the damage rectangle.
	BodySize      float64
	ContactDamage int
}

// Bat is a simple sinusoidal flyer. It consumes the same rectangle and
// damage contracts as the player but runs no tile collision of its own.
type Bat struct {
	X, Y   float64
	Facing HorizontalFacing

	Params BatParams

	centerY     float64
	flightAngle float64 // degrees
}

// NewBat creates a bat flying around the given center position.
func NewBat(x, y float64, params BatParams) *Bat {
	return &Bat{
		X:       x,
		Y:       y,
		Facing:  FacingRight,
		Params:  params,
		centerY: y,
	}
}

// Update advances the flight angle and turns the bat toward the player.
func (b *Bat) Update(elapsedMS float64, playerX float64) {
	b.flightAngle += b.Params.AngularVelocity * elapsedMS

	if b.X+b.Params.BodySize/2 > playerX {
		b.Facing = FacingLeft
	} else {
		b.Facing = FacingRight
	}

	b.Y = b.centerY + b.Params.Amplitude*math.Sin(b.flightAngle*math.Pi/180)
}

// DamageRectangle is the bat's contact-damage box.
func (b *Bat) DamageRectangle() Rectangle {
	return NewRectangle(b.X, b.Y, b.Params.BodySize, b.Params.BodySize)
}

// ContactDamage returns the damage dealt on contact with the player.
func (b *Bat) ContactDamage() int {
	return b.Params.ContactDamage
}

// SpriteState derives the bat's visual-state key: only facing matters.
func (b *Bat) SpriteState() SpriteState {
	return SpriteState{Motion: MotionStanding, Horizontal: b.Facing, Vertical: FacingHorizontal}
}

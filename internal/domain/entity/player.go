package entity

import "math"

// PlayerParams holds the per-actor tuning the controller needs. The motion
// constants used by the physics system live in the physics config; these are
// the values consumed directly by the player itself.
type PlayerParams struct {
	// CollisionX is the narrow box used for horizontal collision checks,
	// as offsets from the player position. CollisionY is the narrow box
	// used for vertical checks.
	CollisionX Rectangle
	CollisionY Rectangle

	MaxHealth      int
	JumpSpeed      float64
	ShortJumpSpeed float64

	InvincibleTimeMS float64
	FlashIntervalMS  float64
}

// Player is the actor controller. It owns position, velocity, facing, the
// grounded flag, the per-frame acceleration intent and the invincibility
// timer. It is mutated only by its own update path, never shared between
// concurrent actors.
type Player struct {
	X, Y                 float64
	VelocityX, VelocityY float64

	// AccelerationX is the horizontal intent for the current frame:
	// -1, 0 or +1.
	AccelerationX int

	HorizontalFacing HorizontalFacing
	VerticalFacing   VerticalFacing

	OnGround    bool
	JumpActive  bool
	Interacting bool

	Health int
	Params PlayerParams

	invincibleTimer Timer
}

// NewPlayer creates a player at the given world position.
func NewPlayer(x, y float64, params PlayerParams) *Player {
	return &Player{
		X:                x,
		Y:                y,
		HorizontalFacing: FacingLeft,
		VerticalFacing:   FacingHorizontal,
		Health:           params.MaxHealth,
		Params:           params,
		invincibleTimer:  NewTimer(params.InvincibleTimeMS),
	}
}

// StartMovingLeft sets the leftward acceleration intent for this frame.
func (p *Player) StartMovingLeft() {
	p.AccelerationX = -1
	p.HorizontalFacing = FacingLeft
	p.Interacting = false
}

// StartMovingRight sets the rightward acceleration intent for this frame.
func (p *Player) StartMovingRight() {
	p.AccelerationX = 1
	p.HorizontalFacing = FacingRight
	p.Interacting = false
}

// StopMoving clears the horizontal acceleration intent.
func (p *Player) StopMoving() {
	p.AccelerationX = 0
}

// LookUp aims upward.
func (p *Player) LookUp() {
	p.VerticalFacing = FacingUp
	p.Interacting = false
}

// LookDown aims downward. On the transition the player starts interacting
// with the background if standing on the ground.
func (p *Player) LookDown() {
	if p.VerticalFacing == FacingDown {
		return
	}
	p.VerticalFacing = FacingDown
	p.Interacting = p.OnGround
}

// LookHorizontal returns the aim to neutral.
func (p *Player) LookHorizontal() {
	p.VerticalFacing = FacingHorizontal
}

// StartJump begins a jump. Only a grounded player gains upward velocity;
// the held flag is set regardless so the gravity selection in the vertical
// integrator sees it.
func (p *Player) StartJump() {
	p.JumpActive = true
	p.Interacting = false

	if p.OnGround {
		p.VelocityY = -p.Params.JumpSpeed
	}
}

// StopJump releases the jump. It only clears the held flag; it never
// truncates velocity directly.
func (p *Player) StopJump() {
	p.JumpActive = false
}

// TakeDamage applies damage unless the invincibility window is open.
// A successful hit clamps vertical velocity to at least a small knock-up so
// repeated hits never stack downward speed, and opens the window.
// It reports whether damage was applied.
func (p *Player) TakeDamage(hp int) bool {
	if p.invincibleTimer.Active() {
		return false
	}

	p.Health -= hp
	p.VelocityY = math.Min(p.VelocityY, -p.Params.ShortJumpSpeed)
	p.invincibleTimer.Reset()
	return true
}

// Invincible reports whether the damage window is currently closed.
func (p *Player) Invincible() bool {
	return p.invincibleTimer.Active()
}

// UpdateTimers advances the player's own countdowns.
func (p *Player) UpdateTimers(elapsedMS float64) {
	p.invincibleTimer.Update(elapsedMS)
}

// SpriteVisible reports whether the sprite should be drawn this frame.
// While invincible the sprite blinks on the flash interval.
func (p *Player) SpriteVisible() bool {
	return !(p.invincibleTimer.Active() &&
		int(p.invincibleTimer.CurrentTime()/p.Params.FlashIntervalMS)%2 == 0)
}

// SpriteState derives the composite visual-state key from physical state
// and intents. Pure; no side effects.
func (p *Player) SpriteState() SpriteState {
	var motion MotionType
	switch {
	case p.Interacting:
		motion = MotionInteracting
	case p.OnGround:
		if p.AccelerationX != 0 {
			motion = MotionWalking
		} else {
			motion = MotionStanding
		}
	default:
		if p.VelocityY < 0 {
			motion = MotionJumping
		} else {
			motion = MotionFalling
		}
	}
	return SpriteState{
		Motion:     motion,
		Horizontal: p.HorizontalFacing,
		Vertical:   p.VerticalFacing,
	}
}

// DamageRectangle is the box used for incoming-hit tests: the horizontal
// extent of the X box combined with the vertical extent of the Y box.
func (p *Player) DamageRectangle() Rectangle {
	return NewRectangle(
		p.X+p.Params.CollisionX.Left(),
		p.Y+p.Params.CollisionY.Top(),
		p.Params.CollisionX.W,
		p.Params.CollisionY.H,
	)
}

// CenterX returns the horizontal center of the damage rectangle.
func (p *Player) CenterX() float64 {
	r := p.DamageRectangle()
	return r.Left() + r.W/2
}

// CenterY returns the vertical center of the damage rectangle.
func (p *Player) CenterY() float64 {
	r := p.DamageRectangle()
	return r.Top() + r.H/2
}

// LeftCollision returns the leftward probe rectangle: the left half of the
// X box, extended left by delta. delta must be <= 0.
func (p *Player) LeftCollision(delta float64) Rectangle {
	if delta > 0 {
		panic("LeftCollision called with positive delta")
	}
	cx := p.Params.CollisionX
	return NewRectangle(
		p.X+cx.Left()+delta,
		p.Y+cx.Top(),
		cx.W/2-delta,
		cx.H,
	)
}

// RightCollision returns the rightward probe rectangle: the right half of
// the X box, extended right by delta. delta must be >= 0.
func (p *Player) RightCollision(delta float64) Rectangle {
	if delta < 0 {
		panic("RightCollision called with negative delta")
	}
	cx := p.Params.CollisionX
	return NewRectangle(
		p.X+cx.Left()+cx.W/2,
		p.Y+cx.Top(),
		cx.W/2+delta,
		cx.H,
	)
}

// TopCollision returns the upward probe rectangle: the top half of the
// Y box, extended up by delta. delta must be <= 0.
func (p *Player) TopCollision(delta float64) Rectangle {
	if delta > 0 {
		panic("TopCollision called with positive delta")
	}
	cy := p.Params.CollisionY
	return NewRectangle(
		p.X+cy.Left(),
		p.Y+cy.Top()+delta,
		cy.W,
		cy.H/2-delta,
	)
}

// BottomCollision returns the downward probe rectangle: the bottom half of
// the Y box, extended down by delta. delta must be >= 0.
func (p *Player) BottomCollision(delta float64) Rectangle {
	if delta < 0 {
		panic("BottomCollision called with negative delta")
	}
	cy := p.Params.CollisionY
	return NewRectangle(
		p.X+cy.Left(),
		p.Y+cy.Top()+cy.H/2,
		cy.W,
		cy.H/2+delta,
	)
}

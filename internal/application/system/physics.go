package system

import (
	"math"

	"github.com/younwookim/cavern/internal/domain/entity"
	"github.com/younwookim/cavern/internal/infrastructure/config"
)

// PhysicsSystem is the axis motion integrator. Each tick it resolves the
// horizontal axis completely (including the opposite-edge re-check) before
// the vertical axis, querying the stage for colliding tiles and snapping
// position and velocity on contact.
type PhysicsSystem struct {
	cfg   *config.PhysicsConfig
	stage *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		cfg:   cfg,
		stage: stage,
	}
}

// Update advances the player by one tick of elapsed milliseconds:
// horizontal axis first, then vertical.
func (s *PhysicsSystem) Update(p *entity.Player, elapsedMS float64) {
	s.updateX(p, elapsedMS)
	s.updateY(p, elapsedMS)
}

// SetStage swaps the stage the integrator collides against (live reload).
func (s *PhysicsSystem) SetStage(stage *entity.Stage) {
	s.stage = stage
}

func (s *PhysicsSystem) updateX(p *entity.Player, elapsedMS float64) {
	// Update velocity
	acceleration := s.cfg.Jump.AirAcceleration
	if p.OnGround {
		acceleration = s.cfg.Walk.Acceleration
	}
	acceleration *= float64(p.AccelerationX)

	p.VelocityX += acceleration * elapsedMS
	switch {
	case p.AccelerationX < 0:
		p.VelocityX = math.Max(p.VelocityX, -s.cfg.Walk.MaxSpeed)
	case p.AccelerationX > 0:
		p.VelocityX = math.Min(p.VelocityX, s.cfg.Walk.MaxSpeed)
	case p.OnGround:
		// Friction decays toward zero without crossing it.
		if p.VelocityX > 0 {
			p.VelocityX = math.Max(0, p.VelocityX-s.cfg.Walk.Friction*elapsedMS)
		} else {
			p.VelocityX = math.Min(0, p.VelocityX+s.cfg.Walk.Friction*elapsedMS)
		}
	}

	// Calculate delta
	delta := p.VelocityX * elapsedMS
	tileSize := float64(s.stage.TileSize)

	if delta > 0 {
		// Check collision in the direction of delta (right)
		if tile, hit := s.firstWall(p.RightCollision(delta)); hit {
			p.X = float64(tile.Col)*tileSize - p.Params.CollisionX.Right()
			p.VelocityX = 0
		} else {
			p.X += delta
		}

		// Check collision in the other direction
		if tile, hit := s.firstWall(p.LeftCollision(0)); hit {
			p.X = float64(tile.Col)*tileSize + p.Params.CollisionX.Right()
		}
	} else {
		// Check collision in the direction of delta (left)
		if tile, hit := s.firstWall(p.LeftCollision(delta)); hit {
			p.X = float64(tile.Col)*tileSize + p.Params.CollisionX.Right()
			p.VelocityX = 0
		} else {
			p.X += delta
		}

		// Check collision in the other direction. Unlike the right-moving
		// branch, a hit here also grounds the player.
		if tile, hit := s.firstWall(p.RightCollision(0)); hit {
			p.X = float64(tile.Col)*tileSize - p.Params.CollisionX.Right()
			p.OnGround = true
		}
	}
}

func (s *PhysicsSystem) updateY(p *entity.Player, elapsedMS float64) {
	// Update velocity. Holding the jump while still rising softens gravity;
	// fall speed is clamped, ascent is not.
	gravity := s.cfg.Fall.Gravity
	if p.JumpActive && p.VelocityY < 0 {
		gravity = s.cfg.Jump.Gravity
	}
	p.VelocityY = math.Min(p.VelocityY+gravity*elapsedMS, s.cfg.Fall.MaxSpeed)

	// Calculate delta
	delta := p.VelocityY * elapsedMS
	tileSize := float64(s.stage.TileSize)

	if delta > 0 {
		// Check collision in the direction of delta (down)
		if tile, hit := s.firstWall(p.BottomCollision(delta)); hit {
			p.Y = float64(tile.Row)*tileSize - p.Params.CollisionY.Bottom()
			p.VelocityY = 0
			p.OnGround = true
		} else {
			p.Y += delta
			p.OnGround = false
		}

		// Check collision in the other direction
		if tile, hit := s.firstWall(p.TopCollision(0)); hit {
			p.Y = float64(tile.Row)*tileSize + p.Params.CollisionY.H
		}
	} else {
		// Check collision in the direction of delta (up)
		if tile, hit := s.firstWall(p.TopCollision(delta)); hit {
			p.Y = float64(tile.Row)*tileSize + p.Params.CollisionY.H
			p.VelocityY = 0
			p.OnGround = false
		} else {
			p.Y += delta
			p.OnGround = false
		}

		// Check collision in the other direction
		if tile, hit := s.firstWall(p.BottomCollision(0)); hit {
			p.Y = float64(tile.Row)*tileSize - p.Params.CollisionY.Bottom()
			p.OnGround = true
		}
	}
}

// firstWall returns the first wall tile the rectangle overlaps, in the
// stage's documented row-major query order. Only this first tile is
// authoritative for snapping.
func (s *PhysicsSystem) firstWall(r entity.Rectangle) (entity.CollisionTile, bool) {
	for _, tile := range s.stage.CollidingTiles(r) {
		if tile.Type == entity.TileWall {
			return tile, true
		}
	}
	return entity.CollisionTile{}, false
}

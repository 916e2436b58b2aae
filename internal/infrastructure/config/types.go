package config

// PhysicsConfig is the root config for physics.json. All motion constants
// are in world units per millisecond (velocities) or per millisecond
// squared (accelerations), matching the millisecond tick.
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Walk    WalkConfig    `json:"walk"`
	Fall    FallConfig    `json:"fall"`
	Jump    JumpConfig    `json:"jump"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type WalkConfig struct {
	Acceleration float64 `json:"acceleration"`
	MaxSpeed     float64 `json:"maxSpeed"`
	Friction     float64 `json:"friction"`
}

type FallConfig struct {
	Gravity  float64 `json:"gravity"`
	MaxSpeed float64 `json:"maxSpeed"`
}

type JumpConfig struct {
	Speed           float64 `json:"speed"`
	ShortSpeed      float64 `json:"shortSpeed"`
	AirAcceleration float64 `json:"airAcceleration"`
	// Gravity applied while the jump is held and velocity is still upward.
	Gravity float64 `json:"gravity"`
}

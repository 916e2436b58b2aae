package config

// EntitiesConfig is the root config for entities.json.
type EntitiesConfig struct {
	Player     PlayerConfig     `json:"player"`
	Bat        BatConfig        `json:"bat"`
	DamageText DamageTextConfig `json:"damageText"`
}

type PlayerConfig struct {
	// CollisionX is the narrow box used for horizontal collision checks,
	// CollisionY the narrow box for vertical checks. Offsets are relative
	// to the player position.
	CollisionX Rect `json:"collisionX"`
	CollisionY Rect `json:"collisionY"`

	MaxHealth int `json:"maxHealth"`

	Invincibility InvincibilityConfig `json:"invincibility"`
}

type Rect struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

type InvincibilityConfig struct {
	DurationMS      float64 `json:"durationMs"`
	FlashIntervalMS float64 `json:"flashIntervalMs"`
}

type BatConfig struct {
	// AngularVelocity is in degrees per millisecond.
	AngularVelocity float64 `json:"angularVelocity"`
	Amplitude       float64 `json:"amplitude"`
	BodySize        float64 `json:"bodySize"`
	ContactDamage   int     `json:"contactDamage"`
}

type DamageTextConfig struct {
	RiseSpeed  float64 `json:"riseSpeed"`
	MaxOffset  float64 `json:"maxOffset"`
	DurationMS float64 `json:"durationMs"`
}

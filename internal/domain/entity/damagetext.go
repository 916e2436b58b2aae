package entity

import "math"

// DamageTextParams holds the tuning for the floating damage number.
type DamageTextParams struct {
	// RiseSpeed is the upward drift in world units per millisecond.
	RiseSpeed float64
	// MaxOffset caps how far the number drifts above its anchor.
	MaxOffset float64
	// DurationMS is how long the number stays visible.
	DurationMS float64
}

// DamageText is the floating number shown when the player is hit. It drifts
// upward from the actor's center and disappears after a fixed time.
type DamageText struct {
	Damage  int
	OffsetY float64

	params DamageTextParams
	timer  Timer
}

// NewDamageText creates an inactive damage text.
func NewDamageText(params DamageTextParams) *DamageText {
	return &DamageText{
		params: params,
		timer:  NewTimer(params.DurationMS),
	}
}

// SetDamage restarts the float with a new damage value.
func (d *DamageText) SetDamage(damage int) {
	d.Damage = damage
	d.OffsetY = 0
	d.timer.Reset()
}

// Update advances the drift while the text is visible.
func (d *DamageText) Update(elapsedMS float64) {
	d.timer.Update(elapsedMS)
	if d.timer.Expired() {
		return
	}
	d.OffsetY = math.Max(-d.params.MaxOffset, d.OffsetY-d.params.RiseSpeed*elapsedMS)
}

// Visible reports whether the text should be drawn.
func (d *DamageText) Visible() bool {
	return d.timer.Active()
}

package statblock

import "statcore/pkg/effect"

// TickEffects advances every owned effect by delta seconds via
// effect.Tick, applies the accumulated DoT damage to current_life, and
// reports the same effect.TickResult with IsKillingBlow set if life
// reached zero this call. Per the numeric edge cases, DoT over an
// already-dead block is suppressed: no further life accounting happens
// once current_life has reached zero.
func (b StatBlock) TickEffects(delta float64, isMoving bool, defaults effect.Defaults) (StatBlock, effect.TickResult) {
	kept, result := effect.Tick(b.Effects, delta, isMoving, defaults)
	b.Effects = kept

	if b.CurrentLife > 0 {
		b.CurrentLife -= result.DamageDealt
		if b.CurrentLife <= 0 {
			b.CurrentLife = 0
			result.IsKillingBlow = true
		}
	}

	return b, result
}

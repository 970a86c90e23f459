// Package defense implements the pure mitigation formulas: resistance
// mitigation with a penetration-vs-capped-resistance rule, armour's
// diminishing-returns curve, and the accuracy-vs-evasion damage cap. None
// of these functions touch a StatBlock; they take plain floats and the
// shared tunable Constants so they stay trivially testable and so every
// magic number lives in exactly one place.
package defense

import "statcore/pkg/config"

// EffectiveResistance applies the penetration-vs-capped rule: a resistance
// already at or above the cap only loses half its value to a point of
// penetration (capped resistance blunts penetration to half). Otherwise
// penetration subtracts fully, clamped to [MinResist, MaxResist].
// Negative effective resistance amplifies damage.
func EffectiveResistance(resistance, penetration float64, c config.Constants) float64 {
	if resistance >= c.MaxResist {
		return c.MaxResist - c.PenetrationVsCapped*penetration
	}
	effective := resistance - penetration
	if effective < c.MinResist {
		return c.MinResist
	}
	if effective > c.MaxResist {
		return c.MaxResist
	}
	return effective
}

// MitigateResistance returns the damage remaining after resistance
// mitigation, floored at zero.
func MitigateResistance(raw, resistance, penetration float64, c config.Constants) float64 {
	effective := EffectiveResistance(resistance, penetration, c)
	out := raw * (1 - effective/100.0)
	if out < 0 {
		return 0
	}
	return out
}

// ResistanceNeededForReduction solves for the resistance rating that
// achieves a target damage reduction fraction (0..1) at zero penetration.
// A supplement over the prescribed forward formula, useful for
// gear-planning tooling: reduction = resistance/100 => resistance =
// reduction*100, clamped to the configured bounds.
func ResistanceNeededForReduction(targetReduction float64, c config.Constants) float64 {
	needed := targetReduction * 100.0
	if needed > c.MaxResist {
		return c.MaxResist
	}
	if needed < c.MinResist {
		return c.MinResist
	}
	return needed
}

// PenetrationNeeded solves for the penetration required to bring a capped
// resistance down to a target effective value.
func PenetrationNeeded(resistance, targetEffective float64, c config.Constants) float64 {
	if resistance >= c.MaxResist {
		return (c.MaxResist - targetEffective) / c.PenetrationVsCapped
	}
	return resistance - targetEffective
}

// IsResistanceCapped reports whether a resistance value is at or above the
// configured maximum.
func IsResistanceCapped(resistance float64, c config.Constants) bool {
	return resistance >= c.MaxResist
}

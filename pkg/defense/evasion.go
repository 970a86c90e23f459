package defense

import "statcore/pkg/config"

// DamageCap returns accuracy/(1 + evasion/EvasionScale): the maximum
// damage a single hit may deal against this evasion rating. Zero accuracy
// means no damage can land at all; zero evasion means the cap equals
// accuracy outright.
func DamageCap(accuracy, evasion float64, c config.Constants) float64 {
	if accuracy <= 0 {
		return 0
	}
	if evasion <= 0 {
		return accuracy
	}
	return accuracy / (1 + evasion/c.EvasionScale)
}

// ApplyEvasionCap returns (taken, evaded) for one hit of the given size.
// Damage at or below the cap lands in full; damage above the cap is
// capped, with the excess reported as evaded.
func ApplyEvasionCap(accuracy, evasion, damage float64, c config.Constants) (taken, evaded float64) {
	if damage <= 0 {
		return 0, 0
	}
	cap := DamageCap(accuracy, evasion, c)
	if damage <= cap {
		return damage, 0
	}
	return cap, damage - cap
}

// TriggeredEvasionCap reports whether a hit of the given size would be
// capped.
func TriggeredEvasionCap(accuracy, evasion, damage float64, c config.Constants) bool {
	return damage > DamageCap(accuracy, evasion, c)
}

// EvasionNeededForCap solves for the evasion rating that produces a
// target damage cap given a fixed accuracy.
func EvasionNeededForCap(accuracy, targetCap float64, c config.Constants) float64 {
	if targetCap >= accuracy || targetCap <= 0 {
		return 0
	}
	return c.EvasionScale * (accuracy/targetCap - 1)
}

// EvasionEffectiveness reports what percentage of an incoming hit was
// evaded, for diagnostic reporting.
func EvasionEffectiveness(accuracy, evasion, damage float64, c config.Constants) float64 {
	if damage <= 0 {
		return 0
	}
	_, evaded := ApplyEvasionCap(accuracy, evasion, damage, c)
	pct := evaded / damage * 100.0
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

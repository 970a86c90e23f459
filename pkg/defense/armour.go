package defense

import "statcore/pkg/config"

// ArmourReductionFraction returns armour/(armour + ArmourConstant*damage):
// armour falls off against large hits and excels against many small hits.
// Zero or negative armour returns zero reduction, and so does zero or
// negative damage (no damage, nothing to reduce).
func ArmourReductionFraction(armour, damage float64, c config.Constants) float64 {
	if armour <= 0 {
		return 0
	}
	if damage <= 0 {
		return 0
	}
	return armour / (armour + c.ArmourConstant*damage)
}

// MitigateArmour returns the damage remaining after armour reduction.
func MitigateArmour(armour, damage float64, c config.Constants) float64 {
	if damage <= 0 {
		return 0
	}
	return damage * (1 - ArmourReductionFraction(armour, damage, c))
}

// ArmourReductionPercent is MitigateArmour expressed as a percent reduced,
// for diagnostic reporting.
func ArmourReductionPercent(armour, damage float64, c config.Constants) float64 {
	if damage <= 0 {
		return 0
	}
	return ArmourReductionFraction(armour, damage, c) * 100.0
}

// ArmourNeededForReduction solves for the armour rating that achieves a
// target reduction fraction (0..1) against a specific incoming hit size.
// Supplemented gear-planning helper: reduction = a/(a+k*d) =>
// a = reduction*k*d/(1-reduction).
func ArmourNeededForReduction(targetReduction, damage float64, c config.Constants) float64 {
	if targetReduction <= 0 || targetReduction >= 1 || damage <= 0 {
		return 0
	}
	return targetReduction * c.ArmourConstant * damage / (1 - targetReduction)
}

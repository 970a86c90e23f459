package config

// Constants is the full set of tunables named in the external interfaces:
// max/min resistance, the penetration-vs-capped-resistance factor, the
// armour diminishing-returns constant, the evasion scale factor, and the
// base critical-strike multiplier. No package outside config may hardcode
// any of these; they are threaded through as explicit parameters.
type Constants struct {
	MaxResist           float64 `yaml:"max_resist"`
	MinResist           float64 `yaml:"min_resist"`
	PenetrationVsCapped  float64 `yaml:"penetration_vs_capped"`
	ArmourConstant       float64 `yaml:"armour_constant"`
	EvasionScale         float64 `yaml:"evasion_scale"`
	BaseCritMultiplier   float64 `yaml:"base_crit_multiplier"`
}

// DefaultConstants returns the documented defaults: MAX_RESIST=100,
// MIN_RESIST=-200, PENETRATION_VS_CAPPED=0.5, ARMOUR_CONSTANT=5,
// EVASION_SCALE=1000, base crit multiplier 1.5.
func DefaultConstants() Constants {
	return Constants{
		MaxResist:          100,
		MinResist:          -200,
		PenetrationVsCapped: 0.5,
		ArmourConstant:      5,
		EvasionScale:        1000,
		BaseCritMultiplier:  1.5,
	}
}

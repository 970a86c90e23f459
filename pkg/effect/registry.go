package effect

import "statcore/pkg/stat"

// Default is one row of the ailment default table: the base duration,
// tick rate, base DoT percent (of status damage), stacking discipline,
// and max stack count for a single ailment kind.
type Default struct {
	DamageType     stat.DamageType
	BaseDuration   float64
	TickRate       float64
	BaseDotPercent float64
	Stacking       Stacking
	MaxStacks      int
	// MovingMultiplier scales tick damage while the target is moving.
	// Only Bleed uses a value other than 1.0.
	MovingMultiplier float64
}

// Defaults is an immutable, shared table of ailment defaults, keyed by
// kind. Built at startup (DefaultRegistry or loaded from YAML via
// pkg/config) and never mutated afterward.
type Defaults struct {
	rows [8]Default
}

// For returns the default row for kind.
func (d Defaults) For(kind stat.AilmentKind) Default {
	return d.rows[kind]
}

// Set replaces the default row for kind in place on the receiver. Used by
// pkg/config's YAML loader to apply tuning overrides on top of a
// DefaultRegistry() table.
func (d *Defaults) Set(kind stat.AilmentKind, row Default) {
	d.rows[kind] = row
}

// DefaultRegistry returns the built-in ailment table matching the
// numeric contracts a tester checks against: duration, tick rate, base
// DoT percent, stacking discipline, and max stacks per kind.
func DefaultRegistry() Defaults {
	var d Defaults
	d.rows[stat.Poison] = Default{
		DamageType: stat.Chaos, BaseDuration: 2.0, TickRate: 0.33, BaseDotPercent: 0.20,
		Stacking: Stacking{Kind: Unlimited}, MaxStacks: 999, MovingMultiplier: 1.0,
	}
	d.rows[stat.Bleed] = Default{
		DamageType: stat.Physical, BaseDuration: 5.0, TickRate: 1.0, BaseDotPercent: 0.20,
		Stacking: Stacking{Kind: Limited, MaxStacks: 8, StackEffectiveness: 0.5}, MaxStacks: 8, MovingMultiplier: 2.0,
	}
	d.rows[stat.Burn] = Default{
		DamageType: stat.Fire, BaseDuration: 4.0, TickRate: 0.5, BaseDotPercent: 0.25,
		Stacking: Stacking{Kind: StrongestOnly}, MaxStacks: 1, MovingMultiplier: 1.0,
	}
	d.rows[stat.Freeze] = Default{
		DamageType: stat.Cold, BaseDuration: 0.5, TickRate: 0.1, BaseDotPercent: 0,
		Stacking: Stacking{Kind: StrongestOnly}, MaxStacks: 1, MovingMultiplier: 1.0,
	}
	d.rows[stat.Chill] = Default{
		DamageType: stat.Cold, BaseDuration: 2.0, TickRate: 0.5, BaseDotPercent: 0,
		Stacking: Stacking{Kind: StrongestOnly}, MaxStacks: 1, MovingMultiplier: 1.0,
	}
	d.rows[stat.Static] = Default{
		DamageType: stat.Lightning, BaseDuration: 1.0, TickRate: 0.25, BaseDotPercent: 0,
		Stacking: Stacking{Kind: Limited, MaxStacks: 3, StackEffectiveness: 1.0}, MaxStacks: 3, MovingMultiplier: 1.0,
	}
	d.rows[stat.Fear] = Default{
		DamageType: stat.Chaos, BaseDuration: 1.5, TickRate: 0.5, BaseDotPercent: 0,
		Stacking: Stacking{Kind: StrongestOnly}, MaxStacks: 1, MovingMultiplier: 1.0,
	}
	d.rows[stat.Slow] = Default{
		DamageType: stat.Physical, BaseDuration: 3.0, TickRate: 0.5, BaseDotPercent: 0,
		Stacking: Stacking{Kind: StrongestOnly}, MaxStacks: 1, MovingMultiplier: 1.0,
	}
	return d
}

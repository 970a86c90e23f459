// Package skill implements DamagePacketGenerator -- a skill's damage
// configuration -- and CalculateDamage/CalculateSkillDPS, which turn a
// generator plus an attacker's StatBlock into a combat.DamagePacket or an
// RNG-free DPS estimate.
package skill

import (
	"math/rand"

	"statcore/pkg/stat"
)

// Tag categorizes a skill for scaling and delivery purposes. Attack
// skills draw on weapon damage; Spell skills do not.
type Tag int

const (
	TagAttack Tag = iota
	TagSpell
	TagPhysical
	TagFire
	TagCold
	TagLightning
	TagChaos
	TagElemental
	TagMelee
	TagRanged
	TagProjectile
	TagAoe
)

// BaseDamage is one damage type's flat min/max range contributed directly
// by a skill, before any weapon damage, conversion, or scaling.
type BaseDamage struct {
	Type stat.DamageType
	Min  float64
	Max  float64
}

// Average returns the midpoint of the range, used by the DPS estimator.
func (b BaseDamage) Average() float64 {
	return (b.Min + b.Max) / 2.0
}

// Roll draws a uniform random value in [Min, Max]. A degenerate range
// (Min >= Max) returns Max without consulting rng.
func (b BaseDamage) Roll(rng *rand.Rand) float64 {
	if b.Min >= b.Max {
		return b.Max
	}
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

// DamageConversions converts a percentage of damage from one type to
// another before scaling, in the fixed eight-leg order Physical ->
// Lightning -> Cold -> Fire -> Chaos. Chaos never converts to another
// type. The amount removed from Physical and from Lightning is capped at
// what that type holds when its legs run, but each target still receives
// its full leg share; ColdToFire and FireToChaos are applied uncapped.
type DamageConversions struct {
	PhysicalToFire       float64
	PhysicalToCold       float64
	PhysicalToLightning  float64
	PhysicalToChaos      float64
	LightningToFire      float64
	LightningToCold      float64
	ColdToFire           float64
	FireToChaos          float64
}

// HasConversions reports whether any leg is nonzero, letting callers skip
// the conversion pass entirely for the common case of an unconverted skill.
func (c DamageConversions) HasConversions() bool {
	return c.PhysicalToFire > 0 || c.PhysicalToCold > 0 || c.PhysicalToLightning > 0 ||
		c.PhysicalToChaos > 0 || c.LightningToFire > 0 || c.LightningToCold > 0 ||
		c.ColdToFire > 0 || c.FireToChaos > 0
}

// Apply runs the four source stages (Physical, Lightning, Cold, Fire) in
// order and returns the resulting damage map. Each stage redistributes a
// fraction of its source type's current amount (including whatever a prior
// stage converted into it); only the Physical and Lightning stages cap the
// amount removed from the source at what it holds.
func (c DamageConversions) Apply(damages map[stat.DamageType]float64) map[stat.DamageType]float64 {
	result := make(map[stat.DamageType]float64, len(damages))
	for dt, amt := range damages {
		result[dt] += amt
	}

	if phys := result[stat.Physical]; phys > 0 {
		toFire := phys * c.PhysicalToFire
		toCold := phys * c.PhysicalToCold
		toLightning := phys * c.PhysicalToLightning
		toChaos := phys * c.PhysicalToChaos
		total := minF(toFire+toCold+toLightning+toChaos, phys)
		if total > 0 {
			result[stat.Physical] -= total
			result[stat.Fire] += toFire
			result[stat.Cold] += toCold
			result[stat.Lightning] += toLightning
			result[stat.Chaos] += toChaos
		}
	}

	if lightning := result[stat.Lightning]; lightning > 0 {
		toFire := lightning * c.LightningToFire
		toCold := lightning * c.LightningToCold
		total := minF(toFire+toCold, lightning)
		if total > 0 {
			result[stat.Lightning] -= total
			result[stat.Fire] += toFire
			result[stat.Cold] += toCold
		}
	}

	if cold := result[stat.Cold]; cold > 0 {
		toFire := cold * c.ColdToFire
		if toFire > 0 {
			result[stat.Cold] -= toFire
			result[stat.Fire] += toFire
		}
	}

	if fire := result[stat.Fire]; fire > 0 {
		toChaos := fire * c.FireToChaos
		if toChaos > 0 {
			result[stat.Fire] -= toChaos
			result[stat.Chaos] += toChaos
		}
	}

	for dt, amt := range result {
		if amt <= 0 {
			delete(result, dt)
		}
	}
	return result
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// SkillStatusConversions are a skill's own damage-type-to-ailment
// conversion percentages, combined additively with the attacker's
// stat-derived conversions during damage calculation.
type SkillStatusConversions struct {
	PhysicalToPoison float64
	ChaosToPoison    float64
	PhysicalToBleed  float64
	FireToBurn       float64
	ColdToFreeze     float64
	ColdToChill      float64
	LightningToStatic float64
	ChaosToFear      float64
	PhysicalToSlow   float64
	ColdToSlow       float64
}

// Get returns the conversion percentage from a damage type to an ailment
// kind, or zero for any combination the ailment's design doesn't name.
func (c SkillStatusConversions) Get(from stat.DamageType, to stat.AilmentKind) float64 {
	switch {
	case from == stat.Physical && to == stat.Poison:
		return c.PhysicalToPoison
	case from == stat.Chaos && to == stat.Poison:
		return c.ChaosToPoison
	case from == stat.Physical && to == stat.Bleed:
		return c.PhysicalToBleed
	case from == stat.Fire && to == stat.Burn:
		return c.FireToBurn
	case from == stat.Cold && to == stat.Freeze:
		return c.ColdToFreeze
	case from == stat.Cold && to == stat.Chill:
		return c.ColdToChill
	case from == stat.Lightning && to == stat.Static:
		return c.LightningToStatic
	case from == stat.Chaos && to == stat.Fear:
		return c.ChaosToFear
	case from == stat.Physical && to == stat.Slow:
		return c.PhysicalToSlow
	case from == stat.Cold && to == stat.Slow:
		return c.ColdToSlow
	default:
		return 0
	}
}

// DamageTypeEffectiveness scales each damage type's contribution
// independently of the attacker's own stats; 1.0 is full effectiveness.
type DamageTypeEffectiveness struct {
	Physical, Fire, Cold, Lightning, Chaos float64
}

// DefaultDamageTypeEffectiveness returns all five types at 1.0.
func DefaultDamageTypeEffectiveness() DamageTypeEffectiveness {
	return DamageTypeEffectiveness{Physical: 1, Fire: 1, Cold: 1, Lightning: 1, Chaos: 1}
}

// Get returns the effectiveness multiplier for one damage type.
func (e DamageTypeEffectiveness) Get(dt stat.DamageType) float64 {
	switch dt {
	case stat.Physical:
		return e.Physical
	case stat.Fire:
		return e.Fire
	case stat.Cold:
		return e.Cold
	case stat.Lightning:
		return e.Lightning
	case stat.Chaos:
		return e.Chaos
	default:
		return 1
	}
}

// DamagePacketGenerator describes how a skill turns an attacker's stats
// into damage: its own base damage, how much of the attacker's weapon it
// draws on, scaling factors, crit contribution, tags, and the conversion
// tables layered on top of the attacker's stat-derived conversions.
type DamagePacketGenerator struct {
	ID   string
	Name string

	BaseDamages []BaseDamage

	WeaponEffectiveness  float64
	DamageEffectiveness  float64
	AttackSpeedModifier  float64

	BaseCritChance      float64
	CritMultiplierBonus float64

	Tags []Tag

	StatusConversions  SkillStatusConversions
	DamageConversions  DamageConversions
	TypeEffectiveness  DamageTypeEffectiveness

	HitsPerAttack int
	CanChain      bool
	ChainCount    int
	PierceChance  float64
}

// BasicAttack returns a minimal weapon-scaling melee attack, the skill
// equivalent of an unarmed strike.
func BasicAttack() DamagePacketGenerator {
	return DamagePacketGenerator{
		ID:                  "basic_attack",
		Name:                "Basic Attack",
		WeaponEffectiveness: 1.0,
		DamageEffectiveness: 1.0,
		AttackSpeedModifier: 1.0,
		Tags:                []Tag{TagAttack, TagMelee},
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		HitsPerAttack:       1,
	}
}

func (s DamagePacketGenerator) hasTag(t Tag) bool {
	for _, tag := range s.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// IsAttack reports whether this skill draws on weapon damage.
func (s DamagePacketGenerator) IsAttack() bool {
	return s.hasTag(TagAttack)
}

// IsSpell reports whether this skill is cast rather than attacked.
func (s DamagePacketGenerator) IsSpell() bool {
	return s.hasTag(TagSpell)
}

// EffectiveSpeed scales a base attack/cast speed by this skill's own modifier.
func (s DamagePacketGenerator) EffectiveSpeed(baseSpeed float64) float64 {
	return baseSpeed * s.AttackSpeedModifier
}

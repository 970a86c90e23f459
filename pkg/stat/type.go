// Package stat implements the Flat -> Increased -> More stat composition
// model and the source-aggregation protocol that rebuilds a character's
// derived stats deterministically from heterogeneous contributors (base
// stats, gear, passives, buffs).
package stat

// Kind names every modifiable quantity a Modifier can target. The set is
// closed: no caller constructs a Kind outside this block, and Accumulator's
// dispatch logs a warning for an unrecognized value and ignores it.
//
// Grouped by family: resources, attributes, defenses, elemental resistances,
// offense, penetration, recovery, utility, and one block per ailment kind
// (dot/duration/magnitude/max-stacks/conversion-from-each-damage-type).
type Kind int

const (
	LifeFlat Kind = iota
	LifeIncreased
	ManaFlat
	ManaIncreased
	EnergyShieldFlat
	EnergyShieldIncreased

	StrengthFlat
	DexterityFlat
	IntelligenceFlat
	ConstitutionFlat
	WisdomFlat
	CharismaFlat
	AllAttributesFlat

	ArmourFlat
	ArmourIncreased
	EvasionFlat
	EvasionIncreased

	FireResistanceFlat
	ColdResistanceFlat
	LightningResistanceFlat
	ChaosResistanceFlat
	AllElementalResistanceFlat // fans to fire/cold/lightning only, never chaos

	AddedPhysicalDamage // min/max via Modifier.Value/ValueMax
	AddedFireDamage
	AddedColdDamage
	AddedLightningDamage
	AddedChaosDamage

	IncreasedPhysicalDamage
	IncreasedFireDamage
	IncreasedColdDamage
	IncreasedLightningDamage
	IncreasedChaosDamage
	IncreasedElementalDamage // merged into fire/cold/lightning increased

	MorePhysicalDamage
	MoreFireDamage
	MoreColdDamage
	MoreLightningDamage
	MoreChaosDamage

	AttackSpeedIncreased
	CastSpeedIncreased
	CriticalChanceFlat
	CriticalChanceIncreased
	CriticalMultiplierFlat

	FirePenetration
	ColdPenetration
	LightningPenetration
	ChaosPenetration

	AccuracyFlat
	AccuracyIncreased

	LifeRegenFlat
	ManaRegenFlat
	LifeLeech
	ManaLeech
	LifeOnHit

	MovementSpeedIncreased
	ItemRarityIncreased
	ItemQuantityIncreased

	// Per-ailment family. One block of nine per AilmentKind (see
	// AilmentKind below): dot-increased, duration-increased, magnitude,
	// max-stacks, and five damage-type conversion percentages.
	PoisonDotIncreased
	PoisonDurationIncreased
	PoisonMagnitude
	PoisonMaxStacks
	PoisonConvPhysical
	PoisonConvFire
	PoisonConvCold
	PoisonConvLightning
	PoisonConvChaos

	BleedDotIncreased
	BleedDurationIncreased
	BleedMagnitude
	BleedMaxStacks
	BleedConvPhysical
	BleedConvFire
	BleedConvCold
	BleedConvLightning
	BleedConvChaos

	BurnDotIncreased
	BurnDurationIncreased
	BurnMagnitude
	BurnMaxStacks
	BurnConvPhysical
	BurnConvFire
	BurnConvCold
	BurnConvLightning
	BurnConvChaos

	FreezeDotIncreased
	FreezeDurationIncreased
	FreezeMagnitude
	FreezeMaxStacks
	FreezeConvPhysical
	FreezeConvFire
	FreezeConvCold
	FreezeConvLightning
	FreezeConvChaos

	ChillDotIncreased
	ChillDurationIncreased
	ChillMagnitude
	ChillMaxStacks
	ChillConvPhysical
	ChillConvFire
	ChillConvCold
	ChillConvLightning
	ChillConvChaos

	StaticDotIncreased
	StaticDurationIncreased
	StaticMagnitude
	StaticMaxStacks
	StaticConvPhysical
	StaticConvFire
	StaticConvCold
	StaticConvLightning
	StaticConvChaos

	FearDotIncreased
	FearDurationIncreased
	FearMagnitude
	FearMaxStacks
	FearConvPhysical
	FearConvFire
	FearConvCold
	FearConvLightning
	FearConvChaos

	SlowDotIncreased
	SlowDurationIncreased
	SlowMagnitude
	SlowMaxStacks
	SlowConvPhysical
	SlowConvFire
	SlowConvCold
	SlowConvLightning
	SlowConvChaos

	kindCount // sentinel, not a valid stat type
)

// Valid reports whether k is one of the closed set of named stat kinds.
func (k Kind) Valid() bool {
	return k >= LifeFlat && k < kindCount
}

// DamageType is one of the five damage types carried through the conversion
// and scaling pipeline. Conversion order is fixed: Physical -> Lightning ->
// Cold -> Fire -> Chaos; only Fire may bleed into Chaos, and Chaos never
// converts out.
type DamageType int

const (
	Physical DamageType = iota
	Lightning
	Cold
	Fire
	Chaos
	damageTypeCount
)

func (d DamageType) String() string {
	switch d {
	case Physical:
		return "Physical"
	case Lightning:
		return "Lightning"
	case Cold:
		return "Cold"
	case Fire:
		return "Fire"
	case Chaos:
		return "Chaos"
	default:
		return "Unknown"
	}
}

// Scope distinguishes a local weapon-slot modifier from one that routes
// through the accumulator as a global stat contribution.
type Scope int

const (
	Global Scope = iota
	Local
)

// Modifier is consumed from external Items: the core never constructs the
// item-generation pipeline itself, only the read-only aggregate it produces.
type Modifier struct {
	Stat     Kind    `json:"stat"`
	Scope    Scope   `json:"scope"`
	Value    float64 `json:"value"`
	ValueMax float64 `json:"value_max,omitempty"` // zero means "no range", use Value for both ends
	Tier     int     `json:"tier"`
}

// HasRange reports whether the modifier rolls a min-max pair rather than a
// single value.
func (m Modifier) HasRange() bool {
	return m.ValueMax != 0 && m.ValueMax != m.Value
}

// AilmentKind is the closed set of status-effect kinds carried by the
// effect system and by the per-ailment stat family above.
type AilmentKind int

const (
	Poison AilmentKind = iota
	Bleed
	Burn
	Freeze
	Chill
	Static
	Fear
	Slow
	ailmentKindCount
)

func (k AilmentKind) String() string {
	switch k {
	case Poison:
		return "Poison"
	case Bleed:
		return "Bleed"
	case Burn:
		return "Burn"
	case Freeze:
		return "Freeze"
	case Chill:
		return "Chill"
	case Static:
		return "Static"
	case Fear:
		return "Fear"
	case Slow:
		return "Slow"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the eight named ailment kinds.
func (k AilmentKind) Valid() bool {
	return k >= Poison && k < ailmentKindCount
}

// AilmentKinds returns the eight ailment kinds in table order.
func AilmentKinds() []AilmentKind {
	return []AilmentKind{Poison, Bleed, Burn, Freeze, Chill, Static, Fear, Slow}
}

package stat

import "github.com/sirupsen/logrus"

// Conversions holds the five damage-type -> ailment conversion percentages
// for one ailment kind (as decimals, e.g. 0.30 for 30%).
type Conversions struct {
	Physical  float64 `json:"physical"`
	Fire      float64 `json:"fire"`
	Cold      float64 `json:"cold"`
	Lightning float64 `json:"lightning"`
	Chaos     float64 `json:"chaos"`
}

// FromDamageType returns the conversion percentage for a single damage type.
func (c Conversions) FromDamageType(d DamageType) float64 {
	switch d {
	case Physical:
		return c.Physical
	case Fire:
		return c.Fire
	case Cold:
		return c.Cold
	case Lightning:
		return c.Lightning
	case Chaos:
		return c.Chaos
	default:
		return 0
	}
}

// AilmentStats holds the dot/duration/magnitude/max-stacks contributions
// accumulated for one ailment kind.
type AilmentStats struct {
	DotIncreased      float64 `json:"dot_increased"`
	DurationIncreased float64 `json:"duration_increased"`
	Magnitude         float64 `json:"magnitude"`
	MaxStacksBonus    int     `json:"max_stacks_bonus"`
}

// WeaponElementalRoll is a (type, min, max) weapon damage entry collected
// from gear, mirroring how the original aggregator keeps a growable list
// rather than five named fields (a weapon need not roll every element).
type WeaponElementalRoll struct {
	Type DamageType
	Min  float64
	Max  float64
}

// Accumulator is the write-only scratch type every Source writes into
// during a rebuild. It is intentionally monolithic -- one named field (or
// per-ailment array slot) per Kind -- trading struct size for a simple,
// branch-free dispatch on the hot path, per the heavy-enum design note.
type Accumulator struct {
	LifeFlat, LifeIncreased             float64
	ManaFlat, ManaIncreased             float64
	EnergyShieldFlat, EnergyShieldIncreased float64

	StrengthFlat, DexterityFlat, IntelligenceFlat float64
	ConstitutionFlat, WisdomFlat, CharismaFlat     float64

	ArmourFlat, ArmourIncreased   float64
	EvasionFlat, EvasionIncreased float64

	FireResistanceFlat, ColdResistanceFlat float64
	LightningResistanceFlat, ChaosResistanceFlat float64

	GlobalDamageFlat      [damageTypeCount]float64
	GlobalDamageIncreased [damageTypeCount]float64
	GlobalDamageMore      [damageTypeCount][]float64
	ElementalIncreased    float64 // merged into fire/cold/lightning increased on apply

	AttackSpeedIncreased, CastSpeedIncreased float64
	CriticalChanceFlat, CriticalChanceIncreased float64
	CriticalMultiplierFlat float64

	FirePenetration, ColdPenetration float64
	LightningPenetration, ChaosPenetration float64

	AccuracyFlat, AccuracyIncreased float64

	LifeRegenFlat, ManaRegenFlat float64
	LifeLeech, ManaLeech, LifeOnHit float64

	MovementSpeedIncreased float64
	ItemRarityIncreased    float64
	ItemQuantityIncreased  float64

	// Weapon-local fields, populated only by GearSource for a main-hand item.
	WeaponPhysicalMin, WeaponPhysicalMax float64
	WeaponPhysicalIncreased              float64
	WeaponElementalDamages                []WeaponElementalRoll
	WeaponAttackSpeed                     float64 // 0 means "unset"
	WeaponCritChance                      float64 // 0 means "unset"

	Ailments    [ailmentKindCount]AilmentStats
	Conversions [ailmentKindCount]Conversions
}

// NewAccumulator returns a zeroed Accumulator ready to receive contributions.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// ApplyModifier routes a single global-scope Modifier into the accumulator.
// Local-scope weapon modifiers are handled by GearSource directly, which
// calls the weapon-specific fields above before falling through to this
// method for any stat the local scope doesn't special-case.
func (a *Accumulator) ApplyModifier(m Modifier) {
	a.ApplyKind(m.Stat, m.Value)
}

// ApplyKind writes one contribution for the given Kind. Percentage-bearing
// kinds (Increased, leech, conversion) are expressed on the wire as
// whole-number percentages (matching external Item/Modifier conventions)
// and divided by 100 here to produce the decimal the composition rule
// expects.
func (a *Accumulator) ApplyKind(k Kind, value float64) {
	if !k.Valid() {
		logrus.WithFields(logrus.Fields{
			"function": "ApplyKind",
			"package":  "stat",
			"kind":     int(k),
		}).Warn("unknown stat kind, ignoring contribution")
		return
	}

	switch k {
	case LifeFlat:
		a.LifeFlat += value
	case LifeIncreased:
		a.LifeIncreased += value / 100.0
	case ManaFlat:
		a.ManaFlat += value
	case ManaIncreased:
		a.ManaIncreased += value / 100.0
	case EnergyShieldFlat:
		a.EnergyShieldFlat += value
	case EnergyShieldIncreased:
		a.EnergyShieldIncreased += value / 100.0

	case StrengthFlat:
		a.StrengthFlat += value
	case DexterityFlat:
		a.DexterityFlat += value
	case IntelligenceFlat:
		a.IntelligenceFlat += value
	case ConstitutionFlat:
		a.ConstitutionFlat += value
	case WisdomFlat:
		a.WisdomFlat += value
	case CharismaFlat:
		a.CharismaFlat += value
	case AllAttributesFlat:
		a.StrengthFlat += value
		a.DexterityFlat += value
		a.IntelligenceFlat += value
		a.ConstitutionFlat += value
		a.WisdomFlat += value
		a.CharismaFlat += value

	case ArmourFlat:
		a.ArmourFlat += value
	case ArmourIncreased:
		a.ArmourIncreased += value / 100.0
	case EvasionFlat:
		a.EvasionFlat += value
	case EvasionIncreased:
		a.EvasionIncreased += value / 100.0

	case FireResistanceFlat:
		a.FireResistanceFlat += value
	case ColdResistanceFlat:
		a.ColdResistanceFlat += value
	case LightningResistanceFlat:
		a.LightningResistanceFlat += value
	case ChaosResistanceFlat:
		a.ChaosResistanceFlat += value
	case AllElementalResistanceFlat:
		a.FireResistanceFlat += value
		a.ColdResistanceFlat += value
		a.LightningResistanceFlat += value

	case AddedPhysicalDamage:
		a.GlobalDamageFlat[Physical] += value
	case AddedFireDamage:
		a.GlobalDamageFlat[Fire] += value
	case AddedColdDamage:
		a.GlobalDamageFlat[Cold] += value
	case AddedLightningDamage:
		a.GlobalDamageFlat[Lightning] += value
	case AddedChaosDamage:
		a.GlobalDamageFlat[Chaos] += value

	case IncreasedPhysicalDamage:
		a.GlobalDamageIncreased[Physical] += value / 100.0
	case IncreasedFireDamage:
		a.GlobalDamageIncreased[Fire] += value / 100.0
	case IncreasedColdDamage:
		a.GlobalDamageIncreased[Cold] += value / 100.0
	case IncreasedLightningDamage:
		a.GlobalDamageIncreased[Lightning] += value / 100.0
	case IncreasedChaosDamage:
		a.GlobalDamageIncreased[Chaos] += value / 100.0
	case IncreasedElementalDamage:
		a.ElementalIncreased += value / 100.0

	case MorePhysicalDamage:
		a.GlobalDamageMore[Physical] = append(a.GlobalDamageMore[Physical], value/100.0)
	case MoreFireDamage:
		a.GlobalDamageMore[Fire] = append(a.GlobalDamageMore[Fire], value/100.0)
	case MoreColdDamage:
		a.GlobalDamageMore[Cold] = append(a.GlobalDamageMore[Cold], value/100.0)
	case MoreLightningDamage:
		a.GlobalDamageMore[Lightning] = append(a.GlobalDamageMore[Lightning], value/100.0)
	case MoreChaosDamage:
		a.GlobalDamageMore[Chaos] = append(a.GlobalDamageMore[Chaos], value/100.0)

	case AttackSpeedIncreased:
		a.AttackSpeedIncreased += value / 100.0
	case CastSpeedIncreased:
		a.CastSpeedIncreased += value / 100.0
	case CriticalChanceFlat:
		a.CriticalChanceFlat += value
	case CriticalChanceIncreased:
		a.CriticalChanceIncreased += value / 100.0
	case CriticalMultiplierFlat:
		a.CriticalMultiplierFlat += value / 100.0

	case FirePenetration:
		a.FirePenetration += value
	case ColdPenetration:
		a.ColdPenetration += value
	case LightningPenetration:
		a.LightningPenetration += value
	case ChaosPenetration:
		a.ChaosPenetration += value

	case AccuracyFlat:
		a.AccuracyFlat += value
	case AccuracyIncreased:
		a.AccuracyIncreased += value / 100.0

	case LifeRegenFlat:
		a.LifeRegenFlat += value
	case ManaRegenFlat:
		a.ManaRegenFlat += value
	case LifeLeech:
		a.LifeLeech += value / 100.0
	case ManaLeech:
		a.ManaLeech += value / 100.0
	case LifeOnHit:
		a.LifeOnHit += value

	case MovementSpeedIncreased:
		a.MovementSpeedIncreased += value / 100.0
	case ItemRarityIncreased:
		a.ItemRarityIncreased += value / 100.0
	case ItemQuantityIncreased:
		a.ItemQuantityIncreased += value / 100.0

	default:
		a.applyAilmentKind(k, value)
	}
}

// applyAilmentKind handles the 72-entry per-ailment family: nine stat
// kinds (dot/duration/magnitude/max-stacks/five conversions) times the
// eight ailment kinds.
func (a *Accumulator) applyAilmentKind(k Kind, value float64) {
	kind, sub, ok := decomposeAilmentKind(k)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function": "applyAilmentKind",
			"package":  "stat",
			"kind":     int(k),
		}).Warn("unreachable stat kind in ailment dispatch")
		return
	}

	stats := &a.Ailments[kind]
	conv := &a.Conversions[kind]

	switch sub {
	case ailmentSubDot:
		stats.DotIncreased += value / 100.0
	case ailmentSubDuration:
		stats.DurationIncreased += value / 100.0
	case ailmentSubMagnitude:
		stats.Magnitude += value / 100.0
	case ailmentSubMaxStacks:
		stats.MaxStacksBonus += int(value)
	case ailmentSubConvPhysical:
		conv.Physical += value / 100.0
	case ailmentSubConvFire:
		conv.Fire += value / 100.0
	case ailmentSubConvCold:
		conv.Cold += value / 100.0
	case ailmentSubConvLightning:
		conv.Lightning += value / 100.0
	case ailmentSubConvChaos:
		conv.Chaos += value / 100.0
	}
}

type ailmentSub int

const (
	ailmentSubDot ailmentSub = iota
	ailmentSubDuration
	ailmentSubMagnitude
	ailmentSubMaxStacks
	ailmentSubConvPhysical
	ailmentSubConvFire
	ailmentSubConvCold
	ailmentSubConvLightning
	ailmentSubConvChaos
	ailmentSubCount
)

// decomposeAilmentKind maps one of the 72 per-ailment Kind constants back
// to its (AilmentKind, ailmentSub) pair. The family is laid out as
// contiguous 9-wide blocks starting at PoisonDotIncreased, in the exact
// order the ailmentSub constants are declared, so the split is arithmetic.
func decomposeAilmentKind(k Kind) (AilmentKind, ailmentSub, bool) {
	if k < PoisonDotIncreased || k > SlowConvChaos {
		return 0, 0, false
	}
	offset := int(k - PoisonDotIncreased)
	return AilmentKind(offset / int(ailmentSubCount)), ailmentSub(offset % int(ailmentSubCount)), true
}

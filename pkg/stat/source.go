package stat

import "golang.org/x/exp/slices"

// Source is the polymorphic contributor protocol: anything that feeds
// stats into a rebuild implements this. The set of implementations is
// closed (BaseStats, Gear, Passive, Buff) -- a closed sum type is preferred
// over open inheritance since the match on variant never appears on a hot
// path, only at sort time.
type Source interface {
	// ID identifies this source (an item's base type id, a buff id, ...).
	ID() string

	// Priority controls application order: base stats apply first
	// (≈ -100), then gear (≈ 0), then passives (≈ 100), then buffs
	// (≈ 200). Order only matters for a stat's More list; Flat and
	// Increased are commutative sums.
	Priority() int

	// Apply writes this source's contribution into the accumulator.
	Apply(acc *Accumulator)
}

// SortSources stably sorts sources by ascending priority, preserving
// insertion order among equal priorities so More-list ordering stays
// deterministic.
func SortSources(sources []Source) []Source {
	sorted := slices.Clone(sources)
	slices.SortStableFunc(sorted, func(a, b Source) int {
		return a.Priority() - b.Priority()
	})
	return sorted
}

// BaseStats contributes the stats derived purely from character level:
// life/mana scaling and the six base attributes. Priority -100: applies
// before anything else so later sources' percentage bonuses see a
// complete flat baseline.
type BaseStats struct {
	Level int
}

func NewBaseStats(level int) BaseStats {
	return BaseStats{Level: level}
}

func (b BaseStats) ID() string { return "base_stats" }

func (b BaseStats) Priority() int { return -100 }

func (b BaseStats) Apply(acc *Accumulator) {
	levels := float64(b.Level - 1)
	acc.LifeFlat += levels * 12.0
	acc.ManaFlat += levels * 6.0
	acc.StrengthFlat += 10.0
	acc.DexterityFlat += 10.0
	acc.IntelligenceFlat += 10.0
	acc.ConstitutionFlat += 10.0
	acc.WisdomFlat += 10.0
	acc.CharismaFlat += 10.0
}

// EquipmentSlot names the ten slots an item can occupy.
type EquipmentSlot int

const (
	SlotMainHand EquipmentSlot = iota
	SlotOffHand
	SlotHelmet
	SlotBodyArmour
	SlotGloves
	SlotBoots
	SlotRing1
	SlotRing2
	SlotAmulet
	SlotBelt
)

// AllEquipmentSlots returns every equipment slot in canonical order.
func AllEquipmentSlots() []EquipmentSlot {
	return []EquipmentSlot{SlotMainHand, SlotOffHand, SlotHelmet, SlotBodyArmour,
		SlotGloves, SlotBoots, SlotRing1, SlotRing2, SlotAmulet, SlotBelt}
}

// ItemDamageRoll is one (type, min, max) weapon-damage entry on an Item.
type ItemDamageRoll struct {
	Type DamageType
	Min  float64
	Max  float64
}

// ItemDamage is the weapon-damage block an Item may carry.
type ItemDamage struct {
	Damages        []ItemDamageRoll
	AttackSpeed    float64
	CriticalChance float64
}

// ItemDefenses is the flat-defense block an Item may carry.
type ItemDefenses struct {
	Armour       float64
	Evasion      float64
	EnergyShield float64
}

// Item is the read-only aggregate the core consumes from an external
// item-generation subsystem (out of scope here; see spec Non-goals). Only
// the fields the core reads are modeled.
type Item struct {
	BaseTypeID string
	Implicit   *Modifier
	Prefixes   []Modifier
	Suffixes   []Modifier
	Defenses   ItemDefenses
	Damage     *ItemDamage // non-nil for weapons
}

// Gear contributes stats from one equipped item. Priority 0.
type Gear struct {
	Slot EquipmentSlot
	Item Item
}

func NewGear(slot EquipmentSlot, item Item) Gear {
	return Gear{Slot: slot, Item: item}
}

func (g Gear) ID() string { return g.Item.BaseTypeID }

func (g Gear) Priority() int { return 0 }

func (g Gear) Apply(acc *Accumulator) {
	isWeapon := g.Item.Damage != nil && g.Slot == SlotMainHand

	if g.Item.Implicit != nil {
		g.applyModifier(acc, *g.Item.Implicit, isWeapon)
	}
	for _, m := range g.Item.Prefixes {
		g.applyModifier(acc, m, isWeapon)
	}
	for _, m := range g.Item.Suffixes {
		g.applyModifier(acc, m, isWeapon)
	}

	acc.ArmourFlat += g.Item.Defenses.Armour
	acc.EvasionFlat += g.Item.Defenses.Evasion
	acc.EnergyShieldFlat += g.Item.Defenses.EnergyShield

	if isWeapon {
		for _, entry := range g.Item.Damage.Damages {
			if entry.Type == Physical {
				acc.WeaponPhysicalMin = entry.Min
				acc.WeaponPhysicalMax = entry.Max
			} else {
				acc.WeaponElementalDamages = append(acc.WeaponElementalDamages,
					WeaponElementalRoll{Type: entry.Type, Min: entry.Min, Max: entry.Max})
			}
		}
		acc.WeaponAttackSpeed = g.Item.Damage.AttackSpeed
		acc.WeaponCritChance = g.Item.Damage.CriticalChance
	}
}

// applyModifier handles the local-scope weapon exception: on a main-hand
// weapon, AddedPhysicalDamage/AddedFireDamage/etc and
// IncreasedPhysicalDamage route to weapon-local fields instead of the
// global accumulator; every other modifier (and every Global-scope
// modifier regardless of slot) routes through ApplyKind as normal.
func (g Gear) applyModifier(acc *Accumulator, m Modifier, isWeapon bool) {
	if isWeapon && m.Scope == Local {
		switch m.Stat {
		case AddedPhysicalDamage:
			max := m.ValueMax
			if max == 0 {
				max = m.Value
			}
			acc.WeaponPhysicalMin += m.Value
			acc.WeaponPhysicalMax += max
			return
		case AddedFireDamage, AddedColdDamage, AddedLightningDamage, AddedChaosDamage:
			max := m.ValueMax
			if max == 0 {
				max = m.Value
			}
			acc.WeaponElementalDamages = append(acc.WeaponElementalDamages,
				WeaponElementalRoll{Type: localDamageType(m.Stat), Min: m.Value, Max: max})
			return
		case IncreasedPhysicalDamage:
			acc.WeaponPhysicalIncreased += m.Value / 100.0
			return
		}
	}
	acc.ApplyKind(m.Stat, m.Value)
}

func localDamageType(k Kind) DamageType {
	switch k {
	case AddedFireDamage:
		return Fire
	case AddedColdDamage:
		return Cold
	case AddedLightningDamage:
		return Lightning
	case AddedChaosDamage:
		return Chaos
	default:
		return Physical
	}
}

// PassiveModifier is one stat contribution granted by an allocated passive.
type PassiveModifier struct {
	Stat   Kind
	Value  float64
	IsMore bool
}

// Passive contributes stats from allocated passive-tree nodes. Priority
// 100: applies after gear, before buffs.
type Passive struct {
	NodeID    string
	Modifiers []PassiveModifier
}

func NewPassive(nodeID string, modifiers ...PassiveModifier) Passive {
	return Passive{NodeID: nodeID, Modifiers: modifiers}
}

func (p Passive) ID() string { return p.NodeID }

func (p Passive) Priority() int { return 100 }

func (p Passive) Apply(acc *Accumulator) {
	for _, m := range p.Modifiers {
		applyPossiblyMore(acc, m.Stat, m.Value, m.IsMore)
	}
}

// Buff contributes stats from a temporary buff or debuff, scaled by its
// current stack count. Priority 200: applies last, so its More
// multipliers land after everything else in the per-stat list.
type Buff struct {
	BuffID             string
	Name               string
	DurationRemaining  float64
	Stacks             int
	IsDebuff           bool
	Modifiers          []BuffModifier
}

// BuffModifier is a per-stack stat contribution from a Buff.
type BuffModifier struct {
	Stat          Kind
	ValuePerStack float64
	IsMore        bool
}

func NewBuff(id, name string, duration float64, isDebuff bool, modifiers ...BuffModifier) Buff {
	return Buff{BuffID: id, Name: name, DurationRemaining: duration, Stacks: 1,
		IsDebuff: isDebuff, Modifiers: modifiers}
}

func (b Buff) ID() string { return b.BuffID }

func (b Buff) Priority() int { return 200 }

func (b Buff) IsActive() bool {
	return b.DurationRemaining > 0 && b.Stacks > 0
}

func (b Buff) Apply(acc *Accumulator) {
	if !b.IsActive() {
		return
	}
	stackMult := float64(b.Stacks)
	for _, m := range b.Modifiers {
		applyPossiblyMore(acc, m.Stat, m.ValuePerStack*stackMult, m.IsMore)
	}
}

// applyPossiblyMore routes a contribution either to a stat's More list
// (increased physical/fire/cold/lightning/chaos damage only) or through the normal Increased-bearing path, matching the teacher's own
// more-vs-increased special-casing in BuffSource/SkillTreeSource.
func applyPossiblyMore(acc *Accumulator, k Kind, value float64, isMore bool) {
	if !isMore {
		acc.ApplyKind(k, value)
		return
	}
	switch k {
	case IncreasedPhysicalDamage:
		acc.GlobalDamageMore[Physical] = append(acc.GlobalDamageMore[Physical], value/100.0)
	case IncreasedFireDamage:
		acc.GlobalDamageMore[Fire] = append(acc.GlobalDamageMore[Fire], value/100.0)
	case IncreasedColdDamage:
		acc.GlobalDamageMore[Cold] = append(acc.GlobalDamageMore[Cold], value/100.0)
	case IncreasedLightningDamage:
		acc.GlobalDamageMore[Lightning] = append(acc.GlobalDamageMore[Lightning], value/100.0)
	case IncreasedChaosDamage:
		acc.GlobalDamageMore[Chaos] = append(acc.GlobalDamageMore[Chaos], value/100.0)
	default:
		acc.ApplyKind(k, value)
	}
}

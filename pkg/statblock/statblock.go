// Package statblock implements StatBlock, the materialized snapshot of an
// entity's stats, and the Rebuild operation that recomputes it from a
// priority-ordered source list.
package statblock

import (
	"encoding/json"

	"statcore/pkg/effect"
	"statcore/pkg/stat"
)

// WeaponDamage returns the min/max damage range contributed by the
// equipped weapon for the given damage type.
func (b StatBlock) WeaponDamage(dt stat.DamageType) (min, max float64) {
	switch dt {
	case stat.Physical:
		return b.WeaponPhysicalMin, b.WeaponPhysicalMax
	case stat.Fire:
		return b.WeaponFireMin, b.WeaponFireMax
	case stat.Cold:
		return b.WeaponColdMin, b.WeaponColdMax
	case stat.Lightning:
		return b.WeaponLightningMin, b.WeaponLightningMax
	case stat.Chaos:
		return b.WeaponChaosMin, b.WeaponChaosMax
	default:
		return 0, 0
	}
}

// GlobalDamageStat returns the aggregated stat.Value backing a damage
// type's increased/more multipliers.
func (b StatBlock) GlobalDamageStat(dt stat.DamageType) stat.Value {
	return b.GlobalDamage[dt]
}

// Resistance returns the uncapped resistance value for a damage type.
// Physical has no resistance stat; armour plays that role instead.
func (b StatBlock) Resistance(dt stat.DamageType) float64 {
	switch dt {
	case stat.Fire:
		return b.FireResistance.Compute()
	case stat.Cold:
		return b.ColdResistance.Compute()
	case stat.Lightning:
		return b.LightningResistance.Compute()
	case stat.Chaos:
		return b.ChaosResistance.Compute()
	default:
		return 0
	}
}

// Penetration returns the penetration value for a damage type. Physical
// has no penetration stat; armour is not penetrated.
func (b StatBlock) Penetration(dt stat.DamageType) float64 {
	switch dt {
	case stat.Fire:
		return b.FirePenetration
	case stat.Cold:
		return b.ColdPenetration
	case stat.Lightning:
		return b.LightningPenetration
	case stat.Chaos:
		return b.ChaosPenetration
	default:
		return 0
	}
}

// ComputedAttackSpeed combines the aggregated attack-speed stat with the
// equipped weapon's own speed.
func (b StatBlock) ComputedAttackSpeed() float64 {
	return b.AttackSpeed.Compute() * b.WeaponAttackSpeed
}

// ComputedCastSpeed is the aggregated cast-speed stat alone; spells do
// not scale off weapon speed.
func (b StatBlock) ComputedCastSpeed() float64 {
	return b.CastSpeed.Compute()
}

// ComputedCritMultiplier is the aggregated critical-strike multiplier.
func (b StatBlock) ComputedCritMultiplier() float64 {
	return b.CriticalMultiplier.Compute()
}

// StatBlock is the materialized entity state: every named stat.Value,
// current resources with their caps, per-damage-type weapon fields,
// per-ailment stats/conversions, the owned effects list, and identity
// (id, equipped items). It is mutated only through Rebuild, the resource
// helpers below, and the effect/combat packages' immutable
// resolve/tick operations -- never in place by an external caller.
type StatBlock struct {
	ID string `json:"id"`

	MaxLife     stat.Value `json:"max_life"`
	CurrentLife float64    `json:"current_life"`
	MaxMana     stat.Value `json:"max_mana"`
	CurrentMana float64    `json:"current_mana"`
	// MaxEnergyShield is recomputed from accumulated energy shield on every
	// Rebuild and can also be set directly with SetMaxEnergyShield; it does
	// not passively regenerate like life or mana.
	MaxEnergyShield     float64 `json:"max_energy_shield"`
	CurrentEnergyShield float64 `json:"current_energy_shield"`

	Strength     stat.Value `json:"strength"`
	Dexterity    stat.Value `json:"dexterity"`
	Intelligence stat.Value `json:"intelligence"`
	Constitution stat.Value `json:"constitution"`
	Wisdom       stat.Value `json:"wisdom"`
	Charisma     stat.Value `json:"charisma"`

	Armour  stat.Value `json:"armour"`
	Evasion stat.Value `json:"evasion"`

	FireResistance      stat.Value `json:"fire_resistance"`
	ColdResistance      stat.Value `json:"cold_resistance"`
	LightningResistance stat.Value `json:"lightning_resistance"`
	ChaosResistance     stat.Value `json:"chaos_resistance"`

	Accuracy stat.Value `json:"accuracy"`
	// GlobalDamage is indexed by stat.DamageType.
	GlobalDamage [5]stat.Value `json:"global_damage"`

	AttackSpeed        stat.Value `json:"attack_speed"`
	CastSpeed          stat.Value `json:"cast_speed"`
	CriticalChance     stat.Value `json:"critical_chance"`
	CriticalMultiplier stat.Value `json:"critical_multiplier"`

	FirePenetration      float64 `json:"fire_penetration"`
	ColdPenetration      float64 `json:"cold_penetration"`
	LightningPenetration float64 `json:"lightning_penetration"`
	ChaosPenetration     float64 `json:"chaos_penetration"`

	LifeRegen float64 `json:"life_regen"`
	ManaRegen float64 `json:"mana_regen"`
	LifeLeech float64 `json:"life_leech"`
	ManaLeech float64 `json:"mana_leech"`
	LifeOnHit float64 `json:"life_on_hit"`

	MovementSpeedIncreased float64 `json:"movement_speed_increased"`
	ItemRarityIncreased    float64 `json:"item_rarity_increased"`
	ItemQuantityIncreased  float64 `json:"item_quantity_increased"`

	WeaponPhysicalMin  float64 `json:"weapon_physical_min"`
	WeaponPhysicalMax  float64 `json:"weapon_physical_max"`
	WeaponFireMin      float64 `json:"weapon_fire_min"`
	WeaponFireMax      float64 `json:"weapon_fire_max"`
	WeaponColdMin      float64 `json:"weapon_cold_min"`
	WeaponColdMax      float64 `json:"weapon_cold_max"`
	WeaponLightningMin float64 `json:"weapon_lightning_min"`
	WeaponLightningMax float64 `json:"weapon_lightning_max"`
	WeaponChaosMin     float64 `json:"weapon_chaos_min"`
	WeaponChaosMax     float64 `json:"weapon_chaos_max"`
	WeaponAttackSpeed  float64 `json:"weapon_attack_speed"`
	WeaponCritChance   float64 `json:"weapon_crit_chance"`

	Ailments    [8]stat.AilmentStats `json:"ailments"`
	Conversions [8]stat.Conversions  `json:"conversions"`

	// Effects replaces the legacy active_dots/active_buffs/
	// active_status_effects lists with a single unified collection, per
	// the immutable-API resolution.
	Effects []effect.Effect `json:"effects,omitempty"`

	Equipped map[stat.EquipmentSlot]stat.Item `json:"equipped,omitempty"`

	// BuffSources is the block's own owned buff list -- the other half of
	// the data model's "identity (id, equipped items by slot, buff
	// sources)" -- maintained through ApplyBuff/RemoveBuff/TickBuffs and
	// folded into every Rebuild alongside Equipped.
	BuffSources []stat.Buff `json:"buff_sources,omitempty"`

	// externalSources caches the non-owned contributors (base stats,
	// passives) from the last explicit Rebuild call, unexported and not
	// serialized: it exists purely so Equip/Unequip/ApplyBuff/RemoveBuff/
	// TickBuffs can each trigger a full rebuild without the caller having
	// to re-supply the whole source list on every owned-state change. A
	// StatBlock restored from JSON starts with no cached external sources;
	// an explicit Rebuild call repopulates it.
	externalSources []stat.Source
}

// ToJSON serializes the StatBlock to its self-describing JSON form,
// preserving every field named in the data model.
func (b StatBlock) ToJSON() ([]byte, error) {
	return json.Marshal(b)
}

// FromJSON deserializes JSON data into b.
func (b *StatBlock) FromJSON(data []byte) error {
	return json.Unmarshal(data, b)
}

// New returns a StatBlock at documented base defaults: life 50, mana 40,
// six attributes at 10, accuracy 1000, attack/cast speed 1.0, critical
// multiplier 1.5, weapon attack speed 1.0, weapon critical chance 5%.
func New(id string) StatBlock {
	b := StatBlock{
		ID:                  id,
		MaxLife:             stat.WithBase(50.0),
		MaxMana:             stat.WithBase(40.0),
		Strength:            stat.WithBase(10.0),
		Dexterity:           stat.WithBase(10.0),
		Intelligence:        stat.WithBase(10.0),
		Constitution:        stat.WithBase(10.0),
		Wisdom:              stat.WithBase(10.0),
		Charisma:            stat.WithBase(10.0),
		Accuracy:            stat.WithBase(1000.0),
		AttackSpeed:         stat.WithBase(1.0),
		CastSpeed:           stat.WithBase(1.0),
		CriticalMultiplier:  stat.WithBase(1.5),
		WeaponAttackSpeed:   1.0,
		WeaponCritChance:    5.0,
		Equipped:            make(map[stat.EquipmentSlot]stat.Item),
	}
	b.CurrentLife = b.MaxLife.Compute()
	b.CurrentMana = b.MaxMana.Compute()
	return b
}

// IsAlive reports whether current life is positive.
func (b StatBlock) IsAlive() bool {
	return b.CurrentLife > 0
}

// Heal increases current life by amount, capped at computed max life.
func (b StatBlock) Heal(amount float64) StatBlock {
	b.CurrentLife = minF(b.CurrentLife+amount, b.MaxLife.Compute())
	return b
}

// RestoreMana increases current mana by amount, capped at computed max mana.
func (b StatBlock) RestoreMana(amount float64) StatBlock {
	b.CurrentMana = minF(b.CurrentMana+amount, b.MaxMana.Compute())
	return b
}

// ApplyEnergyShield adds amount to current energy shield, capped at max.
func (b StatBlock) ApplyEnergyShield(amount float64) StatBlock {
	b.CurrentEnergyShield = minF(b.CurrentEnergyShield+amount, b.MaxEnergyShield)
	return b
}

// SetMaxEnergyShield sets the energy shield capacity, clamping current ES
// to the new cap.
func (b StatBlock) SetMaxEnergyShield(amount float64) StatBlock {
	b.MaxEnergyShield = amount
	b.CurrentEnergyShield = minF(b.CurrentEnergyShield, amount)
	return b
}

// Equip returns a new StatBlock with item placed in slot and triggers a
// rebuild, per the data model's equip/unequip contract. The block's own
// externalSources cache (base stats, passives from the last explicit
// Rebuild call) is reused so the caller never has to re-derive gear
// sources by hand.
func (b StatBlock) Equip(slot stat.EquipmentSlot, item stat.Item) StatBlock {
	equipped := make(map[stat.EquipmentSlot]stat.Item, len(b.Equipped)+1)
	for k, v := range b.Equipped {
		equipped[k] = v
	}
	equipped[slot] = item
	b.Equipped = equipped
	return b.Rebuild(b.externalSources)
}

// Unequip removes and returns the item in slot, if any, and triggers a
// rebuild.
func (b StatBlock) Unequip(slot stat.EquipmentSlot) (StatBlock, stat.Item, bool) {
	item, ok := b.Equipped[slot]
	if !ok {
		return b, stat.Item{}, false
	}
	equipped := make(map[stat.EquipmentSlot]stat.Item, len(b.Equipped))
	for k, v := range b.Equipped {
		if k != slot {
			equipped[k] = v
		}
	}
	b.Equipped = equipped
	next := b.Rebuild(b.externalSources)
	return next, item, true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

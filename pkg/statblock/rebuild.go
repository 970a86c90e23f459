package statblock

import "statcore/pkg/stat"

// Rebuild recomputes every derived stat.Value from scratch by sorting
// sources by priority and applying each into a fresh Accumulator, then
// folding the accumulator into a new StatBlock. Identity (id, equipped
// items, buff sources, active effects) is preserved across the call;
// current life/mana/energy shield are preserved but clamped to the
// freshly computed maximums.
//
// sources may contain stat.Gear and stat.Buff entries as well as the
// external contributors (BaseStats, Passive): any Gear is absorbed into
// the block's own Equipped map (keyed by slot) and any Buff into its
// BuffSources list (keyed by BuffID), exactly as if the caller had gone
// through Equip/ApplyBuff first -- this is what lets a caller build a
// StatBlock in one Rebuild call the same way cmd/statsim and the tests
// do. Everything else is cached as externalSources so
// Equip/Unequip/ApplyBuff/RemoveBuff/TickBuffs can each call Rebuild
// again without the caller re-supplying base stats and passives by hand.
func (b StatBlock) Rebuild(sources []stat.Source) StatBlock {
	next := New(b.ID)
	next.Effects = b.Effects

	equipped := make(map[stat.EquipmentSlot]stat.Item, len(b.Equipped))
	for k, v := range b.Equipped {
		equipped[k] = v
	}

	buffsByID := make(map[string]stat.Buff, len(b.BuffSources))
	buffOrder := make([]string, 0, len(b.BuffSources))
	for _, buff := range b.BuffSources {
		buffsByID[buff.BuffID] = buff
		buffOrder = append(buffOrder, buff.BuffID)
	}

	external := make([]stat.Source, 0, len(sources))
	for _, s := range sources {
		switch src := s.(type) {
		case stat.Gear:
			equipped[src.Slot] = src.Item
		case stat.Buff:
			if _, exists := buffsByID[src.BuffID]; !exists {
				buffOrder = append(buffOrder, src.BuffID)
			}
			buffsByID[src.BuffID] = src
		default:
			external = append(external, s)
		}
	}

	next.Equipped = equipped
	buffs := make([]stat.Buff, 0, len(buffOrder))
	for _, id := range buffOrder {
		buffs = append(buffs, buffsByID[id])
	}
	next.BuffSources = buffs
	next.externalSources = external

	acc := stat.NewAccumulator()
	for _, src := range stat.SortSources(next.allSources(external)) {
		src.Apply(acc)
	}
	applyAccumulator(&next, acc)

	next.CurrentLife = minF(b.CurrentLife, next.MaxLife.Compute())
	next.CurrentMana = minF(b.CurrentMana, next.MaxMana.Compute())
	next.CurrentEnergyShield = minF(b.CurrentEnergyShield, next.MaxEnergyShield)
	return next
}

// allSources folds the block's owned Gear (one per Equipped slot) and
// Buff (one per BuffSources entry) contributors in with the caller's
// external sources.
func (b StatBlock) allSources(external []stat.Source) []stat.Source {
	all := make([]stat.Source, 0, len(external)+len(b.Equipped)+len(b.BuffSources))
	all = append(all, external...)
	for slot, item := range b.Equipped {
		all = append(all, stat.NewGear(slot, item))
	}
	for _, buff := range b.BuffSources {
		all = append(all, buff)
	}
	return all
}

// applyAccumulator folds one fully-populated Accumulator into a fresh
// StatBlock's stat.Value fields. Weapon-local increased-physical scales
// the weapon's own min/max before those numbers ever reach a damage
// calculation; elemental-wide increased contributions fan out to the
// three elemental global-damage buckets in addition to their own type.
func applyAccumulator(b *StatBlock, acc *stat.Accumulator) {
	b.MaxLife.Flat = acc.LifeFlat
	b.MaxLife.Increased = acc.LifeIncreased
	b.MaxMana.Flat = acc.ManaFlat
	b.MaxMana.Increased = acc.ManaIncreased
	b.MaxEnergyShield = (0 + acc.EnergyShieldFlat) * (1 + acc.EnergyShieldIncreased)

	b.Strength.Flat = acc.StrengthFlat
	b.Dexterity.Flat = acc.DexterityFlat
	b.Intelligence.Flat = acc.IntelligenceFlat
	b.Constitution.Flat = acc.ConstitutionFlat
	b.Wisdom.Flat = acc.WisdomFlat
	b.Charisma.Flat = acc.CharismaFlat

	b.Armour.Flat = acc.ArmourFlat
	b.Armour.Increased = acc.ArmourIncreased
	b.Evasion.Flat = acc.EvasionFlat
	b.Evasion.Increased = acc.EvasionIncreased

	b.FireResistance.Flat = acc.FireResistanceFlat
	b.ColdResistance.Flat = acc.ColdResistanceFlat
	b.LightningResistance.Flat = acc.LightningResistanceFlat
	b.ChaosResistance.Flat = acc.ChaosResistanceFlat

	for dt := stat.DamageType(0); int(dt) < len(acc.GlobalDamageFlat); dt++ {
		v := &b.GlobalDamage[dt]
		v.Flat = acc.GlobalDamageFlat[dt]
		v.Increased = acc.GlobalDamageIncreased[dt]
		v.More = append([]float64(nil), acc.GlobalDamageMore[dt]...)
	}
	// Elemental-wide increased damage folds into fire/cold/lightning,
	// matching the physical/chaos exclusion used for elemental resistance.
	b.GlobalDamage[stat.Fire].Increased += acc.ElementalIncreased
	b.GlobalDamage[stat.Cold].Increased += acc.ElementalIncreased
	b.GlobalDamage[stat.Lightning].Increased += acc.ElementalIncreased

	b.AttackSpeed.Increased = acc.AttackSpeedIncreased
	b.CastSpeed.Increased = acc.CastSpeedIncreased
	b.CriticalChance.Flat = acc.CriticalChanceFlat
	b.CriticalChance.Increased = acc.CriticalChanceIncreased
	b.CriticalMultiplier.Increased = acc.CriticalMultiplierFlat

	b.FirePenetration = acc.FirePenetration
	b.ColdPenetration = acc.ColdPenetration
	b.LightningPenetration = acc.LightningPenetration
	b.ChaosPenetration = acc.ChaosPenetration

	b.Accuracy.Flat = acc.AccuracyFlat
	b.Accuracy.Increased = acc.AccuracyIncreased

	b.LifeRegen = acc.LifeRegenFlat
	b.ManaRegen = acc.ManaRegenFlat
	b.LifeLeech = acc.LifeLeech
	b.ManaLeech = acc.ManaLeech
	b.LifeOnHit = acc.LifeOnHit

	b.MovementSpeedIncreased = acc.MovementSpeedIncreased
	b.ItemRarityIncreased = acc.ItemRarityIncreased
	b.ItemQuantityIncreased = acc.ItemQuantityIncreased

	physMin := acc.WeaponPhysicalMin * (1 + acc.WeaponPhysicalIncreased)
	physMax := acc.WeaponPhysicalMax * (1 + acc.WeaponPhysicalIncreased)
	b.WeaponPhysicalMin, b.WeaponPhysicalMax = physMin, physMax
	for _, roll := range acc.WeaponElementalDamages {
		switch roll.Type {
		case stat.Fire:
			b.WeaponFireMin += roll.Min
			b.WeaponFireMax += roll.Max
		case stat.Cold:
			b.WeaponColdMin += roll.Min
			b.WeaponColdMax += roll.Max
		case stat.Lightning:
			b.WeaponLightningMin += roll.Min
			b.WeaponLightningMax += roll.Max
		case stat.Chaos:
			b.WeaponChaosMin += roll.Min
			b.WeaponChaosMax += roll.Max
		}
	}
	if acc.WeaponAttackSpeed > 0 {
		b.WeaponAttackSpeed = acc.WeaponAttackSpeed
	}
	if acc.WeaponCritChance > 0 {
		b.WeaponCritChance = acc.WeaponCritChance
	}

	for i := range acc.Ailments {
		b.Ailments[i] = acc.Ailments[i]
		b.Conversions[i] = acc.Conversions[i]
	}
}

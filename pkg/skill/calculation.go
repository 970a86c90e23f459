package skill

import (
	"math/rand"

	"statcore/pkg/combat"
	"statcore/pkg/effect"
	"statcore/pkg/stat"
	"statcore/pkg/statblock"
)

var allDamageTypes = [...]stat.DamageType{stat.Physical, stat.Fire, stat.Cold, stat.Lightning, stat.Chaos}

// CalculateDamage turns a skill and an attacker's stats into a
// combat.DamagePacket:
//  1. gather base damage (skill base_damages + weapon damage for
//     Attack-tagged skills with nonzero weapon effectiveness)
//  2. apply the skill's fixed-order damage type conversions
//  3. scale each type by its increased/more multipliers, damage
//     effectiveness, and per-type effectiveness
//  4. roll a crit and apply its multiplier to every scaled damage
//  5. copy penetration and accuracy from the attacker
//  6. compute each ailment's pending status damage from the combined
//     skill + attacker conversions
//  7. set the hit count for multi-hit skills
func CalculateDamage(attacker statblock.StatBlock, gen DamagePacketGenerator, sourceID string, rng *rand.Rand, defaults effect.Defaults) combat.DamagePacket {
	packet := combat.NewDamagePacket(sourceID, gen.ID)

	base := map[stat.DamageType]float64{}
	for _, bd := range gen.BaseDamages {
		base[bd.Type] += bd.Roll(rng)
	}
	if gen.IsAttack() && gen.WeaponEffectiveness > 0 {
		for _, dt := range allDamageTypes {
			min, max := attacker.WeaponDamage(dt)
			if max <= 0 {
				continue
			}
			scaledMin := min * gen.WeaponEffectiveness
			scaledMax := max * gen.WeaponEffectiveness
			rolled := scaledMax
			if scaledMin < scaledMax {
				rolled = scaledMin + rng.Float64()*(scaledMax-scaledMin)
			}
			base[dt] += rolled
		}
	}

	converted := base
	if gen.DamageConversions.HasConversions() {
		converted = gen.DamageConversions.Apply(base)
	}

	for dt, amount := range converted {
		if amount <= 0 {
			continue
		}
		damageStat := attacker.GlobalDamageStat(dt)
		scaled := amount * damageStat.TotalIncreasedMultiplier() * damageStat.TotalMoreMultiplier() *
			gen.DamageEffectiveness * gen.TypeEffectiveness.Get(dt)
		if scaled > 0 {
			packet.AddDamage(dt, scaled)
		}
	}

	critChance := calculateCritChance(attacker, gen)
	packet.IsCritical = rng.Float64() < critChance/100.0
	if packet.IsCritical {
		packet.CritMultiplier = attacker.ComputedCritMultiplier() + gen.CritMultiplierBonus
		for i := range packet.Damages {
			packet.Damages[i].Amount *= packet.CritMultiplier
		}
	}

	packet.FirePenetration = attacker.Penetration(stat.Fire)
	packet.ColdPenetration = attacker.Penetration(stat.Cold)
	packet.LightningPenetration = attacker.Penetration(stat.Lightning)
	packet.ChaosPenetration = attacker.Penetration(stat.Chaos)

	packet.Accuracy = attacker.Accuracy.Compute()

	for _, kind := range stat.AilmentKinds() {
		statusDamage := combinedStatusDamage(kind, packet.Damages, gen.StatusConversions, attacker)
		if statusDamage <= 0 {
			continue
		}
		d := defaults.For(kind)
		stats := attacker.Ailments[kind]
		duration := d.BaseDuration * (1 + stats.DurationIncreased)
		magnitude := 1 + stats.Magnitude
		dotDPS := statusDotDPS(d.BaseDotPercent, statusDamage, stats)
		packet.PendingAilments = append(packet.PendingAilments, combat.PendingAilment{
			Kind:         kind,
			Type:         d.DamageType,
			StatusDamage: statusDamage,
			Duration:     duration,
			Magnitude:    magnitude,
			DotDPS:       dotDPS,
		})
	}

	packet.HitCount = gen.HitsPerAttack
	if packet.HitCount <= 0 {
		packet.HitCount = 1
	}

	return packet
}

func combinedStatusDamage(kind stat.AilmentKind, damages []combat.FinalDamage, skillConv SkillStatusConversions, attacker statblock.StatBlock) float64 {
	playerConv := attacker.Conversions[kind]
	var total float64
	for _, d := range damages {
		conv := skillConv.Get(d.Type, kind) + playerConv.FromDamageType(d.Type)
		total += d.Amount * conv
	}
	return total
}

func combinedStatusDamageAvg(kind stat.AilmentKind, damages []TypeAmount, skillConv SkillStatusConversions, attacker statblock.StatBlock) float64 {
	playerConv := attacker.Conversions[kind]
	var total float64
	for _, d := range damages {
		conv := skillConv.Get(d.Type, kind) + playerConv.FromDamageType(d.Type)
		total += d.Amount * conv
	}
	return total
}

func statusDotDPS(baseDotPercent, statusDamage float64, stats stat.AilmentStats) float64 {
	if baseDotPercent == 0 {
		return 0
	}
	return baseDotPercent * statusDamage * (1 + stats.DotIncreased)
}

func calculateCritChance(attacker statblock.StatBlock, gen DamagePacketGenerator) float64 {
	baseCrit := gen.BaseCritChance
	if gen.IsAttack() {
		baseCrit += attacker.WeaponCritChance
	}
	flatCrit := baseCrit + attacker.CriticalChance.Flat
	chance := flatCrit * attacker.CriticalChance.TotalIncreasedMultiplier() * attacker.CriticalChance.TotalMoreMultiplier()
	if chance < 0 {
		return 0
	}
	if chance > 100 {
		return 100
	}
	return chance
}

type TypeAmount struct {
	Type   stat.DamageType
	Amount float64
}

// CalculateAverageDamageByType mirrors CalculateDamage's base-gather,
// convert, and scale steps using averages in place of rolls -- the
// foundation of the RNG-free DPS estimator.
func CalculateAverageDamageByType(attacker statblock.StatBlock, gen DamagePacketGenerator) []TypeAmount {
	base := map[stat.DamageType]float64{}
	for _, bd := range gen.BaseDamages {
		base[bd.Type] += bd.Average()
	}
	if gen.IsAttack() && gen.WeaponEffectiveness > 0 {
		for _, dt := range allDamageTypes {
			min, max := attacker.WeaponDamage(dt)
			if max <= 0 {
				continue
			}
			base[dt] += (min + max) / 2.0 * gen.WeaponEffectiveness
		}
	}

	converted := base
	if gen.DamageConversions.HasConversions() {
		converted = gen.DamageConversions.Apply(base)
	}

	var result []TypeAmount
	for dt, amount := range converted {
		if amount <= 0 {
			continue
		}
		damageStat := attacker.GlobalDamageStat(dt)
		scaled := amount * damageStat.TotalIncreasedMultiplier() * damageStat.TotalMoreMultiplier() *
			gen.DamageEffectiveness * gen.TypeEffectiveness.Get(dt)
		if scaled > 0 {
			result = append(result, TypeAmount{Type: dt, Amount: scaled})
		}
	}
	return result
}

// CalculateSkillDPS estimates effective DPS with no RNG: rolls are
// replaced by their means and the crit multiplier's contribution by
// 1 + (crit_mult-1)*crit_chance/100, added to the DoT contribution of
// damaging ailments (Poison, Bleed, Burn) scaled by attack/cast speed.
func CalculateSkillDPS(attacker statblock.StatBlock, gen DamagePacketGenerator, defaults effect.Defaults) float64 {
	avgDamages := CalculateAverageDamageByType(attacker, gen)
	var totalAvg float64
	for _, d := range avgDamages {
		totalAvg += d.Amount
	}

	critChance := calculateCritChance(attacker, gen) / 100.0
	critMult := attacker.ComputedCritMultiplier() + gen.CritMultiplierBonus
	critDPSMult := 1 + (critMult-1)*critChance

	var speed float64
	if gen.IsAttack() {
		speed = attacker.ComputedAttackSpeed() * gen.AttackSpeedModifier
	} else {
		speed = attacker.ComputedCastSpeed() * gen.AttackSpeedModifier
	}

	hits := gen.HitsPerAttack
	if hits <= 0 {
		hits = 1
	}
	hitDPS := totalAvg * critDPSMult * speed * float64(hits)

	var dotDPS float64
	for _, kind := range []stat.AilmentKind{stat.Poison, stat.Bleed, stat.Burn} {
		statusDamage := combinedStatusDamageAvg(kind, avgDamages, gen.StatusConversions, attacker)
		if statusDamage <= 0 {
			continue
		}
		d := defaults.For(kind)
		stats := attacker.Ailments[kind]
		dotDPS += statusDotDPS(d.BaseDotPercent, statusDamage, stats) * speed
	}

	return hitDPS + dotDPS
}

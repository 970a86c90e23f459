package combat

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"statcore/pkg/config"
	"statcore/pkg/defense"
	"statcore/pkg/effect"
	"statcore/pkg/stat"
	"statcore/pkg/statblock"
)

// ResolveDamage applies a DamagePacket to a defending StatBlock and
// returns the resulting (immutable) state plus a CombatResult breakdown.
// The pipeline:
//  1. per-type resistance mitigation (Physical passes through raw --
//     armour plays that role instead)
//  2. armour reduction applied specifically to the physical entry
//  3. the accuracy-vs-evasion damage cap applied proportionally across
//     the post-armour total
//  4. energy shield absorbs first, then life; a non-positive result
//     clamps to zero and marks a killing blow
//  5. each pending ailment rolls its application chance
//     (status_damage / target max life) and, on success, is folded into
//     the defender's unified effects list via its stacking discipline
func ResolveDamage(defender statblock.StatBlock, packet DamagePacket, rng *rand.Rand, defaults effect.Defaults, constants config.Constants) (statblock.StatBlock, CombatResult) {
	next := defender
	result := NewCombatResult(uuid.NewString())
	result.ESBefore = next.CurrentEnergyShield
	result.LifeBefore = next.CurrentLife

	for _, fd := range packet.Damages {
		pen := packet.Penetration(fd.Type)
		resist := next.Resistance(fd.Type)

		var afterResist float64
		if fd.Type == stat.Physical {
			afterResist = fd.Amount
		} else {
			afterResist = defense.MitigateResistance(fd.Amount, resist, pen, constants)
		}

		mitigated := fd.Amount - afterResist
		if mitigated > 0 {
			result.DamageReducedByResists += mitigated
		}
		result.DamageTaken = append(result.DamageTaken, DamageTaken{
			Type:            fd.Type,
			RawAmount:       fd.Amount,
			MitigatedAmount: maxF(mitigated, 0),
			FinalAmount:     afterResist,
		})
	}

	for i := range result.DamageTaken {
		if result.DamageTaken[i].Type != stat.Physical || result.DamageTaken[i].FinalAmount <= 0 {
			continue
		}
		armour := next.Armour.Compute()
		afterArmour := defense.MitigateArmour(armour, result.DamageTaken[i].FinalAmount, constants)
		reduced := result.DamageTaken[i].FinalAmount - afterArmour
		result.DamageReducedByArmour = reduced
		result.DamageTaken[i].MitigatedAmount += reduced
		result.DamageTaken[i].FinalAmount = afterArmour
	}

	var totalBeforeEvasion float64
	for _, d := range result.DamageTaken {
		totalBeforeEvasion += d.FinalAmount
	}

	evasion := next.Evasion.Compute()
	_, evaded := defense.ApplyEvasionCap(packet.Accuracy, evasion, totalBeforeEvasion, constants)
	if evaded > 0 {
		result.TriggeredEvasionCap = true
		result.DamagePreventedByEvasion = evaded
		EvasionCapsTriggered.Inc()

		if totalBeforeEvasion > 0 {
			ratio := (totalBeforeEvasion - evaded) / totalBeforeEvasion
			for i := range result.DamageTaken {
				evadedPortion := result.DamageTaken[i].FinalAmount * (1 - ratio)
				result.DamageTaken[i].MitigatedAmount += evadedPortion
				result.DamageTaken[i].FinalAmount *= ratio
			}
		}
	}

	for _, d := range result.DamageTaken {
		result.TotalDamage += d.FinalAmount
	}

	remaining := result.TotalDamage
	if next.CurrentEnergyShield > 0 && remaining > 0 {
		absorbed := minF(remaining, next.CurrentEnergyShield)
		next.CurrentEnergyShield -= absorbed
		remaining -= absorbed
		result.DamageBlockedByES = absorbed
	}
	if remaining > 0 {
		next.CurrentLife -= remaining
	}
	if next.CurrentLife <= 0 {
		result.IsKillingBlow = true
		next.CurrentLife = 0
	}

	result.ESAfter = next.CurrentEnergyShield
	result.LifeAfter = next.CurrentLife

	targetMaxLife := next.MaxLife.Compute()
	for _, pending := range packet.PendingAilments {
		if rng.Float64() >= pending.ApplyChance(targetMaxLife) {
			continue
		}
		e := effect.NewAilment(pending.Kind, pending.Duration, pending.Magnitude, pending.DotDPS, packet.SourceID, defaults)
		next.Effects = effect.AddAilment(next.Effects, e)
		result.EffectsApplied = append(result.EffectsApplied, e)
	}

	Resolutions.With(map[string]string{"killing_blow": strconv.FormatBool(result.IsKillingBlow)}).Inc()

	return next, result
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

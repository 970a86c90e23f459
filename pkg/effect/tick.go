package effect

import (
	"math"

	"statcore/pkg/stat"
)

const stackEpsilon = 1e-9

// strength is the value two instances of the same ailment kind are
// compared on when a stacking discipline must pick a winner: dot_dps for
// damaging ailments, magnitude otherwise.
func strength(e Effect) float64 {
	if e.IsDamaging() {
		return e.DotDPS
	}
	return e.Magnitude
}

// AddAilment adds a new ailment instance to an existing effect list
// according to its kind's stacking discipline, returning the updated
// list. The three disciplines, verbatim from the contract:
//
//   - StrongestOnly: at most one instance per kind. The new instance
//     replaces the current one only if its strength is >= the current's,
//     refreshing duration; otherwise it is discarded.
//   - Unlimited: always appended, never replaces.
//   - Limited(max, stackEffectiveness): appended with effectiveness 1.0 if
//     no instance of the kind exists yet, else stackEffectiveness, until
//     the cap is reached; at the cap the weakest existing instance is
//     refreshed to the new instance's duration and strength instead of
//     appending.
//
// After any add, is_strongest is recomputed across all instances of the
// affected kind: the maximum-strength instance is marked, ties broken by
// first-found.
func AddAilment(effects []Effect, add Effect) []Effect {
	switch add.Stacking.Kind {
	case StrongestOnly:
		effects = addStrongestOnly(effects, add)
	case Unlimited:
		effects = append(effects, add)
	case Limited:
		effects = addLimited(effects, add)
	default:
		effects = append(effects, add)
	}
	return recomputeStrongest(effects, add.Kind)
}

func addStrongestOnly(effects []Effect, add Effect) []Effect {
	for i := range effects {
		if effects[i].Kind != add.Kind || effects[i].Variant != VariantAilment {
			continue
		}
		if strength(add) >= strength(effects[i]) {
			add.IsStrongest = true
			effects[i] = add
		}
		return effects
	}
	return append(effects, add)
}

func addLimited(effects []Effect, add Effect) []Effect {
	count := 0
	weakestIdx := -1
	weakestStrength := math.Inf(1)
	for i := range effects {
		if effects[i].Kind != add.Kind || effects[i].Variant != VariantAilment {
			continue
		}
		count++
		if s := strength(effects[i]); s < weakestStrength {
			weakestStrength = s
			weakestIdx = i
		}
	}

	if count == 0 {
		add.Effectiveness = 1.0
		return append(effects, add)
	}
	if count < add.Stacking.MaxStacks {
		add.Effectiveness = add.Stacking.StackEffectiveness
		return append(effects, add)
	}

	// At cap: refresh the weakest instance in place.
	add.Effectiveness = effects[weakestIdx].Effectiveness
	effects[weakestIdx] = add
	return effects
}

// recomputeStrongest marks exactly one instance of kind (the one with
// maximum strength, ties broken by first-found) as IsStrongest and clears
// the flag on every other instance of that kind.
func recomputeStrongest(effects []Effect, kind stat.AilmentKind) []Effect {
	best := -1
	bestStrength := math.Inf(-1)
	for i := range effects {
		if effects[i].Variant != VariantAilment || effects[i].Kind != kind {
			continue
		}
		effects[i].IsStrongest = false
		if s := strength(effects[i]); s > bestStrength+stackEpsilon {
			bestStrength = s
			best = i
		}
	}
	if best >= 0 {
		effects[best].IsStrongest = true
	}
	return effects
}

// TickResult reports the outcome of advancing every effect by delta.
// Tick sets StatEffectsExpired when a StatModifier effect expires.
// IsKillingBlow is not set by Tick itself -- Tick has no notion of life --
// it is left false here and set by the StatBlock-level caller that applies
// DamageDealt to current_life.
type TickResult struct {
	DamageDealt        float64
	ExpiredEffects     []Effect
	StatEffectsExpired bool
	IsKillingBlow      bool
}

// Tick advances every effect in the list by delta seconds and returns the
// updated list (dead effects removed) plus a TickResult carrying the total
// DoT damage emitted and the effects that expired this call.
//
// Ordering, per the tick contract: for each ailment, time_until_tick
// decrements by delta; while time_until_tick <= 0 and duration_remaining >
// 0, a tick is emitted and time_until_tick += tick_rate (this sub-step
// loop is what makes a delta larger than tick_rate emit more than one
// tick). duration_remaining is decremented by the full delta only after
// all tick emissions for that effect. StatModifier effects only drain
// duration. Within the whole call, every ailment's ticks are emitted
// before any duration is decremented for that entity's total accumulated
// damage — accumulated damage is summed across all effects and returned
// once, to be applied by the caller to a single life field.
func Tick(effects []Effect, delta float64, isMoving bool, defaults Defaults) ([]Effect, TickResult) {
	var result TickResult
	kept := effects[:0:0]

	for _, e := range effects {
		if e.Variant == VariantAilment {
			movingMult := 1.0
			if isMoving {
				movingMult = defaults.For(e.Kind).MovingMultiplier
			}

			e.TimeUntilTick -= delta
			for e.TimeUntilTick <= 0 && e.DurationRemaining > 0 {
				result.DamageDealt += e.DotDPS * e.TickRate * float64(e.Stacks) * e.Effectiveness * movingMult
				e.TimeUntilTick += e.TickRate
			}
		}
		e.DurationRemaining -= delta

		if e.IsActive() {
			kept = append(kept, e)
		} else {
			result.ExpiredEffects = append(result.ExpiredEffects, e)
			if e.Variant == VariantStatModifier {
				result.StatEffectsExpired = true
			}
		}
	}

	return kept, result
}

package combat

import (
	"encoding/json"

	"statcore/pkg/effect"
	"statcore/pkg/stat"
)

// DamageTaken records one damage type's journey from raw amount through
// whatever mitigation applied to it.
type DamageTaken struct {
	Type            stat.DamageType `json:"type"`
	RawAmount       float64         `json:"raw_amount"`
	MitigatedAmount float64         `json:"mitigated_amount"`
	FinalAmount     float64         `json:"final_amount"`
}

// CombatResult is the full breakdown produced by ResolveDamage: the
// per-type ledger, aggregate mitigation totals, the effects that landed,
// resource state before/after, and the killing-blow/evasion-cap flags.
type CombatResult struct {
	ID string `json:"id"`

	DamageTaken []DamageTaken `json:"damage_taken"`
	TotalDamage float64       `json:"total_damage"`

	DamageBlockedByES        float64 `json:"damage_blocked_by_es"`
	DamageReducedByArmour    float64 `json:"damage_reduced_by_armour"`
	DamageReducedByResists   float64 `json:"damage_reduced_by_resists"`
	DamagePreventedByEvasion float64 `json:"damage_prevented_by_evasion"`

	EffectsApplied []effect.Effect `json:"effects_applied,omitempty"`

	ESBefore   float64 `json:"es_before"`
	ESAfter    float64 `json:"es_after"`
	LifeBefore float64 `json:"life_before"`
	LifeAfter  float64 `json:"life_after"`

	IsKillingBlow       bool `json:"is_killing_blow"`
	TriggeredEvasionCap bool `json:"triggered_evasion_cap"`
}

// NewCombatResult returns a zero-value CombatResult with the given id.
func NewCombatResult(id string) CombatResult {
	return CombatResult{ID: id}
}

// ToJSON serializes the result to its self-describing JSON form.
func (r CombatResult) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// FromJSON deserializes JSON data into r.
func (r *CombatResult) FromJSON(data []byte) error {
	return json.Unmarshal(data, r)
}

// TotalRawDamage sums every entry's pre-mitigation amount.
func (r CombatResult) TotalRawDamage() float64 {
	var total float64
	for _, d := range r.DamageTaken {
		total += d.RawAmount
	}
	return total
}

// TotalMitigated sums every entry's mitigated amount.
func (r CombatResult) TotalMitigated() float64 {
	var total float64
	for _, d := range r.DamageTaken {
		total += d.MitigatedAmount
	}
	return total
}

// DamageOfType returns the ledger entry for a damage type, if present.
func (r CombatResult) DamageOfType(dt stat.DamageType) (DamageTaken, bool) {
	for _, d := range r.DamageTaken {
		if d.Type == dt {
			return d, true
		}
	}
	return DamageTaken{}, false
}

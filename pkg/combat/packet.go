// Package combat implements DamagePacket, the output of a damage
// calculation, and ResolveDamage, the immutable pipeline that applies a
// packet to a defending StatBlock and returns the resulting state plus a
// CombatResult breakdown.
package combat

import (
	"encoding/json"

	"statcore/pkg/stat"
)

// FinalDamage is one damage type's amount after type conversion and
// scaling, before any defensive mitigation.
type FinalDamage struct {
	Type   stat.DamageType `json:"type"`
	Amount float64         `json:"amount"`
}

// PendingAilment is a status-effect application pending a probability
// roll once the packet lands: chance = StatusDamage / target max life.
// DotDPS is only meaningful for damaging kinds (Poison, Bleed, Burn);
// Magnitude carries the utility kinds' strength (Freeze/Chill/Fear/Slow
// percentages, Static's stack strength).
type PendingAilment struct {
	Kind         stat.AilmentKind `json:"kind"`
	Type         stat.DamageType  `json:"type"`
	StatusDamage float64          `json:"status_damage"`
	Duration     float64          `json:"duration"`
	Magnitude    float64          `json:"magnitude"`
	DotDPS       float64          `json:"dot_dps"`
}

// ApplyChance returns the probability this ailment lands on a defender
// with the given max life, clamped to [0, 1].
func (p PendingAilment) ApplyChance(targetMaxLife float64) float64 {
	if targetMaxLife <= 0 {
		return 0
	}
	chance := p.StatusDamage / targetMaxLife
	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}

// DamagePacket is the output of a damage calculation: one or more
// FinalDamage entries, crit/penetration/accuracy metadata, and the
// ailments pending probabilistic application.
type DamagePacket struct {
	SourceID string `json:"source_id"`
	SkillID  string `json:"skill_id"`

	Damages []FinalDamage `json:"damages"`

	IsCritical     bool    `json:"is_critical"`
	CritMultiplier float64 `json:"crit_multiplier"`

	FirePenetration      float64 `json:"fire_penetration"`
	ColdPenetration      float64 `json:"cold_penetration"`
	LightningPenetration float64 `json:"lightning_penetration"`
	ChaosPenetration     float64 `json:"chaos_penetration"`

	Accuracy float64 `json:"accuracy"`

	PendingAilments []PendingAilment `json:"pending_ailments,omitempty"`

	HitCount      int  `json:"hit_count"`
	CanLeech      bool `json:"can_leech"`
	CanApplyOnHit bool `json:"can_apply_on_hit"`
}

// ToJSON serializes the packet to its self-describing JSON form.
func (p DamagePacket) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON deserializes JSON data into p.
func (p *DamagePacket) FromJSON(data []byte) error {
	return json.Unmarshal(data, p)
}

// NewDamagePacket returns an empty packet at documented defaults:
// crit multiplier 1.5, accuracy 1000, hit count 1, leech and on-hit
// effects enabled.
func NewDamagePacket(sourceID, skillID string) DamagePacket {
	return DamagePacket{
		SourceID:       sourceID,
		SkillID:        skillID,
		CritMultiplier: 1.5,
		Accuracy:       1000,
		HitCount:       1,
		CanLeech:       true,
		CanApplyOnHit:  true,
	}
}

// TotalDamage sums every FinalDamage entry's amount.
func (p DamagePacket) TotalDamage() float64 {
	var total float64
	for _, d := range p.Damages {
		total += d.Amount
	}
	return total
}

// DamageOfType sums the amount carried for one damage type.
func (p DamagePacket) DamageOfType(dt stat.DamageType) float64 {
	var total float64
	for _, d := range p.Damages {
		if d.Type == dt {
			total += d.Amount
		}
	}
	return total
}

// AddDamage folds amount into an existing entry for dt, or appends a new one.
func (p *DamagePacket) AddDamage(dt stat.DamageType, amount float64) {
	for i := range p.Damages {
		if p.Damages[i].Type == dt {
			p.Damages[i].Amount += amount
			return
		}
	}
	p.Damages = append(p.Damages, FinalDamage{Type: dt, Amount: amount})
}

// Penetration returns the penetration value for a damage type. Physical
// has no penetration stat; armour plays that role instead.
func (p DamagePacket) Penetration(dt stat.DamageType) float64 {
	switch dt {
	case stat.Fire:
		return p.FirePenetration
	case stat.Cold:
		return p.ColdPenetration
	case stat.Lightning:
		return p.LightningPenetration
	case stat.Chaos:
		return p.ChaosPenetration
	default:
		return 0
	}
}

// HasDamage reports whether the packet carries any positive damage.
func (p DamagePacket) HasDamage() bool {
	return p.TotalDamage() > 0
}

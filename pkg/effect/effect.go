// Package effect implements the time-based effect system: a sum type
// Effect = StatModifier | Ailment, three stacking disciplines, and the
// tick processor that drains durations and emits DoT damage.
package effect

import (
	"encoding/json"

	"github.com/google/uuid"

	"statcore/pkg/stat"
)

// Variant discriminates the two Effect cases.
type Variant int

const (
	VariantStatModifier Variant = iota
	VariantAilment
)

// StackingKind names the three disciplines an ailment kind can use when a
// new instance is added while one or more instances of that kind are
// already active.
type StackingKind int

const (
	StrongestOnly StackingKind = iota
	Unlimited
	Limited
)

// Stacking fully describes a kind's stacking discipline. MaxStacks and
// StackEffectiveness are only meaningful when Kind == Limited.
type Stacking struct {
	Kind               StackingKind `json:"kind"`
	MaxStacks          int          `json:"max_stacks"`
	StackEffectiveness float64      `json:"stack_effectiveness"`
}

// Effect is the common envelope for both variants named in the data
// model: id, name, duration_remaining, total_duration, stacks, max_stacks,
// source_id, plus one of StatModifier's or Ailment's variant-specific
// fields. is_active iff duration_remaining > 0 and stacks > 0.
type Effect struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DurationRemaining float64 `json:"duration_remaining"`
	TotalDuration     float64 `json:"total_duration"`
	Stacks            int     `json:"stacks"`
	MaxStacks         int     `json:"max_stacks"`
	SourceID          string  `json:"source_id"`
	Variant           Variant `json:"variant"`

	// StatModifier fields.
	Modifiers []stat.Modifier `json:"modifiers,omitempty"`
	IsDebuff  bool            `json:"is_debuff,omitempty"`

	// Ailment fields.
	Kind          stat.AilmentKind `json:"kind,omitempty"`
	DamageType    stat.DamageType  `json:"damage_type,omitempty"`
	Magnitude     float64          `json:"magnitude,omitempty"`
	DotDPS        float64          `json:"dot_dps,omitempty"`
	TickRate      float64          `json:"tick_rate,omitempty"`
	TimeUntilTick float64          `json:"time_until_tick,omitempty"`
	Stacking      Stacking         `json:"stacking,omitempty"`
	Effectiveness float64          `json:"effectiveness,omitempty"`
	IsStrongest   bool             `json:"is_strongest,omitempty"`
}

// ToJSON serializes the effect to its self-describing JSON form.
func (e Effect) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON deserializes JSON data into e.
func (e *Effect) FromJSON(data []byte) error {
	return json.Unmarshal(data, e)
}

// IsActive reports whether the effect is still in play.
func (e Effect) IsActive() bool {
	return e.DurationRemaining > 0 && e.Stacks > 0
}

// IsDamaging reports whether this ailment instance carries a nonzero DoT.
func (e Effect) IsDamaging() bool {
	return e.Variant == VariantAilment && e.DotDPS > 0
}

// NewAilment instantiates an Effect for the given kind using table
// defaults, the resolved duration/magnitude/dot_dps from damage
// resolution, and source_id for back-reference. Effectiveness starts at
// 1.0; under Limited stacking, AddAilment sets it to StackEffectiveness
// when an instance of the kind already exists below the cap, and to the
// replaced instance's effectiveness once the cap is reached.
func NewAilment(kind stat.AilmentKind, duration, magnitude, dotDPS float64, sourceID string, defaults Defaults) Effect {
	d := defaults.For(kind)
	return Effect{
		ID:                uuid.NewString(),
		Name:              kind.String(),
		DurationRemaining: duration,
		TotalDuration:     duration,
		Stacks:            1,
		MaxStacks:         d.MaxStacks,
		SourceID:          sourceID,
		Variant:           VariantAilment,
		Kind:              kind,
		DamageType:        d.DamageType,
		Magnitude:         magnitude,
		DotDPS:            dotDPS,
		TickRate:          d.TickRate,
		TimeUntilTick:     d.TickRate,
		Stacking:          d.Stacking,
		Effectiveness:     1.0,
		IsStrongest:       true,
	}
}


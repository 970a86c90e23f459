package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortSourcesOrdersByPriorityStably(t *testing.T) {
	sources := []Source{
		NewBuff("b1", "Buff 1", 10, false),
		NewBaseStats(10),
		NewPassive("p1"),
		NewGear(SlotMainHand, Item{BaseTypeID: "sword"}),
		NewBuff("b2", "Buff 2", 10, false),
	}

	sorted := SortSources(sources)

	assert.Equal(t, "base_stats", sorted[0].ID())
	assert.Equal(t, "sword", sorted[1].ID())
	assert.Equal(t, "p1", sorted[2].ID())
	assert.Equal(t, "b1", sorted[3].ID())
	assert.Equal(t, "b2", sorted[4].ID())
}

func TestBaseStatsApply(t *testing.T) {
	acc := NewAccumulator()
	NewBaseStats(6).Apply(acc)

	assert.InDelta(t, 60.0, acc.LifeFlat, 1e-9) // (6-1)*12
	assert.InDelta(t, 30.0, acc.ManaFlat, 1e-9)  // (6-1)*6
	assert.Equal(t, 10.0, acc.StrengthFlat)
}

func TestGearAppliesWeaponPhysicalToLocalFields(t *testing.T) {
	item := Item{
		BaseTypeID: "axe",
		Damage: &ItemDamage{
			Damages:        []ItemDamageRoll{{Type: Physical, Min: 10, Max: 20}, {Type: Fire, Min: 1, Max: 5}},
			AttackSpeed:    1.3,
			CriticalChance: 6.0,
		},
	}
	acc := NewAccumulator()
	NewGear(SlotMainHand, item).Apply(acc)

	assert.Equal(t, 10.0, acc.WeaponPhysicalMin)
	assert.Equal(t, 20.0, acc.WeaponPhysicalMax)
	assert.Equal(t, 1.3, acc.WeaponAttackSpeed)
	assert.Equal(t, 6.0, acc.WeaponCritChance)
	assert.Equal(t, []WeaponElementalRoll{{Type: Fire, Min: 1, Max: 5}}, acc.WeaponElementalDamages)
}

func TestGearOffhandWeaponDamageIsNotLocal(t *testing.T) {
	item := Item{
		BaseTypeID: "shield",
		Damage:     &ItemDamage{Damages: []ItemDamageRoll{{Type: Physical, Min: 10, Max: 20}}},
	}
	acc := NewAccumulator()
	NewGear(SlotOffHand, item).Apply(acc)

	assert.Equal(t, 0.0, acc.WeaponPhysicalMin)
	assert.Equal(t, 0.0, acc.WeaponPhysicalMax)
}

func TestGearLocalModifierRouting(t *testing.T) {
	item := Item{
		BaseTypeID: "sword",
		Damage:     &ItemDamage{Damages: []ItemDamageRoll{{Type: Physical, Min: 5, Max: 10}}},
		Prefixes: []Modifier{
			{Stat: AddedPhysicalDamage, Scope: Local, Value: 3, ValueMax: 7},
			{Stat: IncreasedPhysicalDamage, Scope: Local, Value: 20},
		},
		Suffixes: []Modifier{
			{Stat: AddedFireDamage, Scope: Local, Value: 2, ValueMax: 4},
		},
	}
	acc := NewAccumulator()
	NewGear(SlotMainHand, item).Apply(acc)

	assert.Equal(t, 8.0, acc.WeaponPhysicalMin)  // 5 + 3
	assert.Equal(t, 17.0, acc.WeaponPhysicalMax) // 10 + 7
	assert.InDelta(t, 0.20, acc.WeaponPhysicalIncreased, 1e-9)
	assert.Equal(t, []WeaponElementalRoll{{Type: Fire, Min: 2, Max: 4}}, acc.WeaponElementalDamages)
}

func TestGearGlobalModifierRoutesThroughApplyKindRegardlessOfSlot(t *testing.T) {
	item := Item{
		BaseTypeID: "amulet",
		Implicit:   &Modifier{Stat: LifeFlat, Scope: Global, Value: 25},
	}
	acc := NewAccumulator()
	NewGear(SlotAmulet, item).Apply(acc)

	assert.Equal(t, 25.0, acc.LifeFlat)
}

func TestPassiveAppliesMoreAndIncreased(t *testing.T) {
	acc := NewAccumulator()
	NewPassive("node",
		PassiveModifier{Stat: IncreasedFireDamage, Value: 30, IsMore: false},
		PassiveModifier{Stat: IncreasedFireDamage, Value: 15, IsMore: true},
	).Apply(acc)

	assert.InDelta(t, 0.30, acc.GlobalDamageIncreased[Fire], 1e-9)
	assert.Equal(t, []float64{0.15}, acc.GlobalDamageMore[Fire])
}

func TestBuffInactiveContributesNothing(t *testing.T) {
	acc := NewAccumulator()
	expired := Buff{BuffID: "b", DurationRemaining: 0, Stacks: 1,
		Modifiers: []BuffModifier{{Stat: LifeFlat, ValuePerStack: 10}}}
	expired.Apply(acc)

	assert.Equal(t, 0.0, acc.LifeFlat)
}

func TestBuffScalesByStackCount(t *testing.T) {
	acc := NewAccumulator()
	buff := NewBuff("b", "Buff", 10, false, BuffModifier{Stat: LifeFlat, ValuePerStack: 10})
	buff.Stacks = 3
	buff.Apply(acc)

	assert.Equal(t, 30.0, acc.LifeFlat)
}

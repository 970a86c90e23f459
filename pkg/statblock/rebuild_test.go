package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statcore/pkg/effect"
	"statcore/pkg/stat"
)

func TestRebuildAppliesBaseStatsOverNewDefaults(t *testing.T) {
	b := New("hero")
	sources := []stat.Source{stat.NewBaseStats(5)}

	next := b.Rebuild(sources)

	// BaseStats adds 10 flat strength on top of New's base 10.
	assert.InDelta(t, 20.0, next.Strength.Compute(), 1e-9)
	// levels = 4, life flat += 48
	assert.InDelta(t, 98.0, next.MaxLife.Compute(), 1e-9)
}

func TestRebuildClampsCurrentResourcesToNewMax(t *testing.T) {
	b := New("hero")
	b.CurrentLife = 50
	b.CurrentMana = 40

	// A rebuild with no sources resets MaxLife/MaxMana to New's bare
	// defaults (50/40), so current resources should remain unchanged.
	next := b.Rebuild(nil)
	assert.InDelta(t, 50.0, next.CurrentLife, 1e-9)
	assert.InDelta(t, 40.0, next.CurrentMana, 1e-9)
}

func TestRebuildClampsCurrentLifeDownWhenMaxShrinks(t *testing.T) {
	b := New("hero")
	b.CurrentLife = 1000 // pretend a prior buff had inflated this

	next := b.Rebuild(nil)
	assert.InDelta(t, next.MaxLife.Compute(), next.CurrentLife, 1e-9)
}

func TestRebuildPreservesIdentityEquippedAndEffects(t *testing.T) {
	b := New("hero")
	b = b.Equip(stat.SlotMainHand, stat.Item{BaseTypeID: "sword"})
	b.Effects = []effect.Effect{{ID: "e1", DurationRemaining: 1, Stacks: 1}}

	next := b.Rebuild(nil)
	assert.Equal(t, "hero", next.ID)
	_, ok := next.Equipped[stat.SlotMainHand]
	assert.True(t, ok)
	assert.Equal(t, b.Effects, next.Effects)
}

func TestRebuildIsIdempotentForTheSameSources(t *testing.T) {
	b := New("hero")
	sources := []stat.Source{stat.NewBaseStats(10)}

	first := b.Rebuild(sources)
	second := first.Rebuild(sources)

	assert.Equal(t, first, second)
}

func TestRebuildWeaponPhysicalScalesByLocalIncreasedBeforeStorage(t *testing.T) {
	b := New("hero")
	item := stat.Item{
		BaseTypeID: "axe",
		Damage: &stat.ItemDamage{
			Damages: []stat.ItemDamageRoll{
				{Type: stat.Physical, Min: 10, Max: 20},
			},
		},
		Suffixes: []stat.Modifier{
			{Stat: stat.IncreasedPhysicalDamage, Scope: stat.Local, Value: 50},
		},
	}
	gear := stat.NewGear(stat.SlotMainHand, item)

	next := b.Rebuild([]stat.Source{gear})

	assert.InDelta(t, 15.0, next.WeaponPhysicalMin, 1e-9)
	assert.InDelta(t, 30.0, next.WeaponPhysicalMax, 1e-9)
}

func TestRebuildElementalWideIncreasedFansOutToThreeTypes(t *testing.T) {
	b := New("hero")
	passive := stat.NewPassive("tree", stat.PassiveModifier{
		Stat: stat.IncreasedElementalDamage, Value: 40,
	})

	next := b.Rebuild([]stat.Source{passive})

	assert.InDelta(t, 0.40, next.GlobalDamage[stat.Fire].Increased, 1e-9)
	assert.InDelta(t, 0.40, next.GlobalDamage[stat.Cold].Increased, 1e-9)
	assert.InDelta(t, 0.40, next.GlobalDamage[stat.Lightning].Increased, 1e-9)
	assert.Equal(t, 0.0, next.GlobalDamage[stat.Chaos].Increased)
}

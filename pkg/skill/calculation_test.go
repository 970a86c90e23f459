package skill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statcore/pkg/effect"
	"statcore/pkg/stat"
	"statcore/pkg/statblock"
)

func TestCalculateDamageBasicAttackUsesWeaponDamage(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.WeaponPhysicalMin, attacker.WeaponPhysicalMax = 10, 10
	attacker.GlobalDamage[stat.Physical] = stat.WithBase(0)

	gen := BasicAttack()
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	assert.True(t, packet.HasDamage())
	assert.InDelta(t, 10.0, packet.DamageOfType(stat.Physical), 1e-6)
	assert.Equal(t, 1, packet.HitCount)
}

func TestCalculateDamageSkillWithNoWeaponEffectivenessIgnoresWeapon(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.WeaponPhysicalMin, attacker.WeaponPhysicalMax = 999, 999

	gen := DamagePacketGenerator{
		ID:                  "fireball",
		BaseDamages:         []BaseDamage{{Type: stat.Fire, Min: 50, Max: 50}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagSpell, TagFire},
		HitsPerAttack:       1,
	}
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	assert.InDelta(t, 50.0, packet.DamageOfType(stat.Fire), 1e-6)
	assert.Equal(t, 0.0, packet.DamageOfType(stat.Physical))
}

func TestCalculateDamageAppliesDamageEffectivenessAndTypeEffectiveness(t *testing.T) {
	attacker := statblock.New("hero")

	gen := DamagePacketGenerator{
		ID:                  "weak_bolt",
		BaseDamages:         []BaseDamage{{Type: stat.Cold, Min: 100, Max: 100}},
		DamageEffectiveness: 0.5,
		TypeEffectiveness:   DamageTypeEffectiveness{Cold: 0.8, Physical: 1, Fire: 1, Lightning: 1, Chaos: 1},
		Tags:                []Tag{TagSpell},
		HitsPerAttack:       1,
	}
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	assert.InDelta(t, 40.0, packet.DamageOfType(stat.Cold), 1e-6) // 100*0.5*0.8
}

func TestCalculateDamageCriticalHitMultipliesAllDamages(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.CriticalChance.Flat = 100 // guaranteed crit
	attacker.CriticalMultiplier = stat.WithBase(2.0)

	gen := DamagePacketGenerator{
		ID:                  "sure_crit",
		BaseDamages:         []BaseDamage{{Type: stat.Fire, Min: 10, Max: 10}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagSpell},
		HitsPerAttack:       1,
	}
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	assert.True(t, packet.IsCritical)
	assert.InDelta(t, 2.0, packet.CritMultiplier, 1e-9)
	assert.InDelta(t, 20.0, packet.DamageOfType(stat.Fire), 1e-6)
}

func TestCalculateDamageCopiesPenetrationAndAccuracy(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.FirePenetration = 25
	attacker.Accuracy = stat.WithBase(500)

	gen := BasicAttack()
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	assert.InDelta(t, 25.0, packet.FirePenetration, 1e-9)
	assert.InDelta(t, 500.0, packet.Accuracy, 1e-9)
}

func TestCalculateDamageComputesPendingAilmentFromConversions(t *testing.T) {
	attacker := statblock.New("hero")

	gen := DamagePacketGenerator{
		ID:                  "venom_strike",
		BaseDamages:         []BaseDamage{{Type: stat.Physical, Min: 100, Max: 100}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagSpell},
		HitsPerAttack:       1,
		StatusConversions:   SkillStatusConversions{PhysicalToPoison: 0.3},
	}
	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())

	require.Len(t, packet.PendingAilments, 1)
	assert.Equal(t, stat.Poison, packet.PendingAilments[0].Kind)
	assert.InDelta(t, 30.0, packet.PendingAilments[0].StatusDamage, 1e-6)
}

func TestCalculateDamageZeroHitsPerAttackDefaultsToOne(t *testing.T) {
	attacker := statblock.New("hero")
	gen := BasicAttack()
	gen.HitsPerAttack = 0

	rng := rand.New(rand.NewSource(1))
	packet := CalculateDamage(attacker, gen, "hero", rng, effect.DefaultRegistry())
	assert.Equal(t, 1, packet.HitCount)
}

func TestCalculateAverageDamageByTypeUsesMidpointsNotRNG(t *testing.T) {
	attacker := statblock.New("hero")
	gen := DamagePacketGenerator{
		BaseDamages:         []BaseDamage{{Type: stat.Fire, Min: 10, Max: 30}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagSpell},
	}
	result := CalculateAverageDamageByType(attacker, gen)

	assert.Len(t, result, 1)
	assert.Equal(t, stat.Fire, result[0].Type)
	assert.InDelta(t, 20.0, result[0].Amount, 1e-9)
}

func TestCalculateSkillDPSCombinesHitAndDotContributions(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.AttackSpeed = stat.WithBase(1.0)

	gen := DamagePacketGenerator{
		BaseDamages:         []BaseDamage{{Type: stat.Physical, Min: 100, Max: 100}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagAttack},
		AttackSpeedModifier: 1.0,
		HitsPerAttack:       1,
		StatusConversions:   SkillStatusConversions{PhysicalToBleed: 0.5},
	}

	dps := CalculateSkillDPS(attacker, gen, effect.DefaultRegistry())
	assert.Greater(t, dps, 100.0) // hit damage alone plus a nonzero bleed DoT contribution
}

func TestCalculateSkillDPSSpellUsesCastSpeedNotAttackSpeed(t *testing.T) {
	attacker := statblock.New("hero")
	attacker.AttackSpeed = stat.WithBase(10.0) // should be ignored for a spell
	attacker.CastSpeed = stat.WithBase(1.0)

	gen := DamagePacketGenerator{
		BaseDamages:         []BaseDamage{{Type: stat.Fire, Min: 10, Max: 10}},
		DamageEffectiveness: 1.0,
		TypeEffectiveness:   DefaultDamageTypeEffectiveness(),
		Tags:                []Tag{TagSpell},
		AttackSpeedModifier: 1.0,
		HitsPerAttack:       1,
	}

	dps := CalculateSkillDPS(attacker, gen, effect.DefaultRegistry())
	assert.InDelta(t, 10.0, dps, 1e-6)
}

package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statcore/pkg/stat"
)

func TestNewDamagePacketDefaults(t *testing.T) {
	p := NewDamagePacket("attacker", "fireball")
	assert.Equal(t, "attacker", p.SourceID)
	assert.Equal(t, "fireball", p.SkillID)
	assert.InDelta(t, 1.5, p.CritMultiplier, 1e-9)
	assert.InDelta(t, 1000.0, p.Accuracy, 1e-9)
	assert.Equal(t, 1, p.HitCount)
	assert.True(t, p.CanLeech)
	assert.True(t, p.CanApplyOnHit)
	assert.False(t, p.HasDamage())
}

func TestAddDamageFoldsSameType(t *testing.T) {
	p := NewDamagePacket("a", "s")
	p.AddDamage(stat.Fire, 10)
	p.AddDamage(stat.Fire, 5)
	p.AddDamage(stat.Cold, 3)

	assert.Len(t, p.Damages, 2)
	assert.InDelta(t, 15.0, p.DamageOfType(stat.Fire), 1e-9)
	assert.InDelta(t, 3.0, p.DamageOfType(stat.Cold), 1e-9)
	assert.InDelta(t, 18.0, p.TotalDamage(), 1e-9)
	assert.True(t, p.HasDamage())
}

func TestPenetrationRoutesByType(t *testing.T) {
	p := NewDamagePacket("a", "s")
	p.FirePenetration = 10
	p.ColdPenetration = 20
	p.LightningPenetration = 30
	p.ChaosPenetration = 40

	assert.InDelta(t, 10.0, p.Penetration(stat.Fire), 1e-9)
	assert.InDelta(t, 20.0, p.Penetration(stat.Cold), 1e-9)
	assert.InDelta(t, 30.0, p.Penetration(stat.Lightning), 1e-9)
	assert.InDelta(t, 40.0, p.Penetration(stat.Chaos), 1e-9)
	assert.Equal(t, 0.0, p.Penetration(stat.Physical))
}

func TestPendingAilmentApplyChance(t *testing.T) {
	pending := PendingAilment{StatusDamage: 50}
	assert.InDelta(t, 0.5, pending.ApplyChance(100), 1e-9)

	always := PendingAilment{StatusDamage: 200}
	assert.Equal(t, 1.0, always.ApplyChance(100))

	zeroLife := PendingAilment{StatusDamage: 50}
	assert.Equal(t, 0.0, zeroLife.ApplyChance(0))

	negative := PendingAilment{StatusDamage: -10}
	assert.Equal(t, 0.0, negative.ApplyChance(100))
}

func TestDamagePacketJSONRoundTrip(t *testing.T) {
	p := NewDamagePacket("attacker", "fireball")
	p.AddDamage(stat.Fire, 42.5)
	p.IsCritical = true
	p.FirePenetration = 15
	p.PendingAilments = append(p.PendingAilments, PendingAilment{
		Kind: stat.Burn, Type: stat.Fire, StatusDamage: 30, Duration: 4, DotDPS: 7.5,
	})

	data, err := p.ToJSON()
	assert.NoError(t, err)

	var restored DamagePacket
	assert.NoError(t, restored.FromJSON(data))
	assert.Equal(t, p, restored)

	data2, err := restored.ToJSON()
	assert.NoError(t, err)
	assert.Equal(t, data, data2)
}

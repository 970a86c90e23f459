package skill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"statcore/pkg/stat"
)

func TestBaseDamageAverage(t *testing.T) {
	b := BaseDamage{Min: 10, Max: 20}
	assert.InDelta(t, 15.0, b.Average(), 1e-9)
}

func TestBaseDamageRollStaysInRange(t *testing.T) {
	b := BaseDamage{Min: 10, Max: 20}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		v := b.Roll(rng)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 20.0)
	}
}

func TestBaseDamageRollDegenerateRangeReturnsMax(t *testing.T) {
	b := BaseDamage{Min: 10, Max: 10}
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 10.0, b.Roll(rng))
}

func TestDamageConversionsHasConversions(t *testing.T) {
	assert.False(t, DamageConversions{}.HasConversions())
	assert.True(t, DamageConversions{PhysicalToFire: 0.5}.HasConversions())
}

func TestDamageConversionsApplyPhysicalToFireLeg(t *testing.T) {
	c := DamageConversions{PhysicalToFire: 0.5}
	result := c.Apply(map[stat.DamageType]float64{stat.Physical: 100})

	assert.InDelta(t, 50.0, result[stat.Physical], 1e-9)
	assert.InDelta(t, 50.0, result[stat.Fire], 1e-9)
}

func TestDamageConversionsApplyCascadesThroughAllLegsInOrder(t *testing.T) {
	// physical -> lightning -> cold -> fire -> chaos, each leg feeding
	// into the total available for the next.
	c := DamageConversions{
		PhysicalToLightning: 1.0,
		LightningToCold:     1.0,
		ColdToFire:          1.0,
		FireToChaos:         1.0,
	}
	result := c.Apply(map[stat.DamageType]float64{stat.Physical: 100})

	assert.Equal(t, 0.0, result[stat.Physical])
	assert.Equal(t, 0.0, result[stat.Lightning])
	assert.Equal(t, 0.0, result[stat.Cold])
	assert.Equal(t, 0.0, result[stat.Fire])
	assert.InDelta(t, 100.0, result[stat.Chaos], 1e-9)
}

func TestDamageConversionsApplyCapsTotalAtSourceAmount(t *testing.T) {
	c := DamageConversions{PhysicalToFire: 0.6, PhysicalToCold: 0.6}
	result := c.Apply(map[stat.DamageType]float64{stat.Physical: 100})

	// requested 120 worth of conversion but only 100 is available;
	// Physical is fully drained and the legs keep their requested ratio.
	assert.Equal(t, 0.0, result[stat.Physical])
	assert.InDelta(t, 60.0, result[stat.Fire], 1e-9)
	assert.InDelta(t, 60.0, result[stat.Cold], 1e-9)
}

func TestDamageConversionsApplyLeavesUnrelatedTypesAlone(t *testing.T) {
	c := DamageConversions{}
	result := c.Apply(map[stat.DamageType]float64{stat.Chaos: 40})
	assert.InDelta(t, 40.0, result[stat.Chaos], 1e-9)
}

func TestSkillStatusConversionsGet(t *testing.T) {
	c := SkillStatusConversions{PhysicalToPoison: 0.1, FireToBurn: 0.2, ColdToSlow: 0.05}

	assert.InDelta(t, 0.1, c.Get(stat.Physical, stat.Poison), 1e-9)
	assert.InDelta(t, 0.2, c.Get(stat.Fire, stat.Burn), 1e-9)
	assert.InDelta(t, 0.05, c.Get(stat.Cold, stat.Slow), 1e-9)
	assert.Equal(t, 0.0, c.Get(stat.Chaos, stat.Freeze))
}

func TestDefaultDamageTypeEffectivenessIsAllOnes(t *testing.T) {
	e := DefaultDamageTypeEffectiveness()
	assert.Equal(t, 1.0, e.Get(stat.Physical))
	assert.Equal(t, 1.0, e.Get(stat.Fire))
	assert.Equal(t, 1.0, e.Get(stat.Cold))
	assert.Equal(t, 1.0, e.Get(stat.Lightning))
	assert.Equal(t, 1.0, e.Get(stat.Chaos))
}

func TestBasicAttackIsAttackTaggedMelee(t *testing.T) {
	s := BasicAttack()
	assert.True(t, s.IsAttack())
	assert.False(t, s.IsSpell())
	assert.Equal(t, 1, s.HitsPerAttack)
}

func TestEffectiveSpeedScalesBaseSpeed(t *testing.T) {
	s := DamagePacketGenerator{AttackSpeedModifier: 1.5}
	assert.InDelta(t, 3.0, s.EffectiveSpeed(2.0), 1e-9)
}

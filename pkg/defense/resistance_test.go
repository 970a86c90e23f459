package defense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statcore/pkg/config"
)

func TestEffectiveResistanceCappedTakesHalfPenetration(t *testing.T) {
	c := config.DefaultConstants()
	got := EffectiveResistance(100, 40, c)
	assert.InDelta(t, 80.0, got, 1e-9) // 100 - 0.5*40
}

func TestEffectiveResistanceUncappedTakesFullPenetration(t *testing.T) {
	c := config.DefaultConstants()
	got := EffectiveResistance(60, 40, c)
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestEffectiveResistanceClampsToBounds(t *testing.T) {
	c := config.DefaultConstants()
	assert.Equal(t, c.MinResist, EffectiveResistance(-150, 100, c))
	assert.Equal(t, c.MaxResist, EffectiveResistance(90, -50, c))
}

func TestMitigateResistanceNegativeResistanceAmplifies(t *testing.T) {
	c := config.DefaultConstants()
	got := MitigateResistance(100, -50, 0, c)
	assert.InDelta(t, 150.0, got, 1e-9)
}

func TestMitigateResistanceNeverGoesNegative(t *testing.T) {
	c := config.DefaultConstants()
	got := MitigateResistance(100, 100, 0, c)
	assert.Equal(t, 0.0, got)
}

func TestIsResistanceCapped(t *testing.T) {
	c := config.DefaultConstants()
	assert.True(t, IsResistanceCapped(100, c))
	assert.True(t, IsResistanceCapped(150, c))
	assert.False(t, IsResistanceCapped(99, c))
}

func TestPenetrationNeededAgainstCappedResistance(t *testing.T) {
	c := config.DefaultConstants()
	pen := PenetrationNeeded(100, 80, c)
	assert.InDelta(t, 40.0, pen, 1e-9)
	assert.InDelta(t, 80.0, EffectiveResistance(100, pen, c), 1e-9)
}

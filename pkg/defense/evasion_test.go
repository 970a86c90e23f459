package defense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"statcore/pkg/config"
)

func TestApplyEvasionCapScenario(t *testing.T) {
	c := config.DefaultConstants()
	// evasion=1000, accuracy=2000 -> cap = 2000/(1+1000/1000) = 1000
	taken, evaded := ApplyEvasionCap(2000, 1000, 1500, c)
	assert.InDelta(t, 1000.0, taken, 1e-9)
	assert.InDelta(t, 500.0, evaded, 1e-9)
}

func TestApplyEvasionCapUnderCapPassesThrough(t *testing.T) {
	c := config.DefaultConstants()
	taken, evaded := ApplyEvasionCap(2000, 1000, 500, c)
	assert.InDelta(t, 500.0, taken, 1e-9)
	assert.Equal(t, 0.0, evaded)
}

func TestDamageCapZeroAccuracyMeansNoDamageLands(t *testing.T) {
	c := config.DefaultConstants()
	assert.Equal(t, 0.0, DamageCap(0, 500, c))
}

func TestDamageCapZeroEvasionEqualsAccuracy(t *testing.T) {
	c := config.DefaultConstants()
	assert.Equal(t, 1200.0, DamageCap(1200, 0, c))
}

func TestTriggeredEvasionCap(t *testing.T) {
	c := config.DefaultConstants()
	assert.True(t, TriggeredEvasionCap(2000, 1000, 1500, c))
	assert.False(t, TriggeredEvasionCap(2000, 1000, 900, c))
}

func TestEvasionNeededForCapInverseOfDamageCap(t *testing.T) {
	c := config.DefaultConstants()
	evasion := EvasionNeededForCap(2000, 1000, c)
	assert.InDelta(t, 1000.0, evasion, 1e-6)
	assert.InDelta(t, 1000.0, DamageCap(2000, evasion, c), 1e-6)
}

func TestEvasionEffectivenessClampedToPercent(t *testing.T) {
	c := config.DefaultConstants()
	pct := EvasionEffectiveness(2000, 1000, 1500, c)
	assert.InDelta(t, 33.333, pct, 0.01)
}

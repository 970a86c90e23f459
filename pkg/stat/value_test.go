package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCompute(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  float64
	}{
		{"base only", Value{Base: 100}, 100},
		{"base plus flat", Value{Base: 100, Flat: 50}, 150},
		{"increased stacks additively", Value{Base: 100, Increased: 0.20}, 120},
		{"two increased sources add", Value{Base: 100, Increased: 0.20 + 0.30}, 150},
		{"more stacks multiplicatively", Value{Base: 100, More: []float64{0.20, 0.30}}, 156},
		{"flat, increased, and more combine", Value{Base: 50, Flat: 50, Increased: 0.50, More: []float64{0.20}}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.value.Compute(), 1e-9)
		})
	}
}

func TestValueAddHelpers(t *testing.T) {
	v := WithBase(10)
	v.AddFlat(5)
	v.AddIncreased(0.10)
	v.AddMore(0.25)

	assert.Equal(t, 15.0, v.TotalFlat())
	assert.InDelta(t, 1.10, v.TotalIncreasedMultiplier(), 1e-9)
	assert.InDelta(t, 1.25, v.TotalMoreMultiplier(), 1e-9)
	assert.InDelta(t, 20.625, v.Compute(), 1e-9)
}

func TestValueJSONRoundTrip(t *testing.T) {
	v := Value{Base: 100, Flat: 20, Increased: 0.30, More: []float64{0.10, 0.20}}

	data, err := v.ToJSON()
	assert.NoError(t, err)

	var restored Value
	assert.NoError(t, restored.FromJSON(data))
	assert.Equal(t, v, restored)

	data2, err := restored.ToJSON()
	assert.NoError(t, err)
	assert.Equal(t, data, data2)
}

func TestValueResetToBase(t *testing.T) {
	v := Value{Base: 10, Flat: 5, Increased: 0.5, More: []float64{0.2}}
	v.ResetToBase()

	assert.Equal(t, Value{Base: 10}, v)
}

package stat

import "encoding/json"

// Value is the (base, flat, increased, more[]) tuple and its single
// composition rule: (base + flat) x (1 + increased) x prod(1 + more[i]).
// Increased values stack additively; more values stack multiplicatively.
// The order of More is immaterial to the product but preserved for
// breakdown display.
type Value struct {
	Base      float64   `json:"base"`
	Flat      float64   `json:"flat"`
	Increased float64   `json:"increased"`
	More      []float64 `json:"more,omitempty"`
}

// ToJSON serializes the Value to its self-describing JSON form.
func (v Value) ToJSON() ([]byte, error) {
	return json.Marshal(v)
}

// FromJSON deserializes JSON data into v.
func (v *Value) FromJSON(data []byte) error {
	return json.Unmarshal(data, v)
}

// WithBase returns a Value with the given base and no contributions.
func WithBase(base float64) Value {
	return Value{Base: base}
}

// Compute returns the final value: (base + flat) x (1 + increased) x prod(1 + more[i]).
func (v Value) Compute() float64 {
	total := v.TotalFlat() * v.TotalIncreasedMultiplier() * v.TotalMoreMultiplier()
	return total
}

// AddFlat adds a flat bonus.
func (v *Value) AddFlat(amount float64) {
	v.Flat += amount
}

// AddIncreased adds an increased% bonus as a decimal (0.40 for 40%).
func (v *Value) AddIncreased(amount float64) {
	v.Increased += amount
}

// AddMore appends a more% multiplier as a decimal (0.20 for 20% more).
func (v *Value) AddMore(amount float64) {
	v.More = append(v.More, amount)
}

// ResetToBase clears every contribution, leaving only Base.
func (v *Value) ResetToBase() {
	v.Flat = 0
	v.Increased = 0
	v.More = nil
}

// TotalFlat returns base + flat.
func (v Value) TotalFlat() float64 {
	return v.Base + v.Flat
}

// TotalIncreasedMultiplier returns 1 + increased.
func (v Value) TotalIncreasedMultiplier() float64 {
	return 1 + v.Increased
}

// TotalMoreMultiplier returns the product of (1 + more[i]) over all entries.
func (v Value) TotalMoreMultiplier() float64 {
	product := 1.0
	for _, m := range v.More {
		product *= 1 + m
	}
	return product
}

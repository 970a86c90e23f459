package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var diceExpr = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseDiceRange parses a dice expression like "2d6+3" into the [min, max]
// damage range it can produce, letting a skill YAML file author base
// damage the way a tabletop designer would instead of naming min/max
// directly. Adapted from the teacher's dice-expression grammar; unlike the
// original roller this never consults an RNG -- it returns the expression's
// bounds, which skill.BaseDamage.Roll then samples from at calculation time.
func ParseDiceRange(expression string) (min, max float64, err error) {
	expression = strings.ToLower(strings.ReplaceAll(expression, " ", ""))
	matches := diceExpr.FindStringSubmatch(expression)
	if matches == nil {
		return 0, 0, fmt.Errorf("config: invalid dice expression %q", expression)
	}

	numDice, err := strconv.Atoi(matches[1])
	if err != nil || numDice <= 0 {
		return 0, 0, fmt.Errorf("config: invalid dice count in %q", expression)
	}
	dieSize, err := strconv.Atoi(matches[2])
	if err != nil || dieSize <= 0 {
		return 0, 0, fmt.Errorf("config: invalid die size in %q", expression)
	}
	var modifier int
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, fmt.Errorf("config: invalid modifier in %q", expression)
		}
	}

	min = float64(numDice + modifier)
	max = float64(numDice*dieSize + modifier)
	if min < 0 {
		min = 0
	}
	return min, max, nil
}

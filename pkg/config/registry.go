package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"statcore/pkg/effect"
	"statcore/pkg/skill"
	"statcore/pkg/stat"
)

// AilmentOverride is the YAML shape for one row of the ailment default
// table. Kind is required; every other field is optional, and a zero value leaves the compiled-in
// default (effect.DefaultRegistry) for that field untouched, so a tuning
// file only needs to name the rows it actually changes.
type AilmentOverride struct {
	Kind               string  `yaml:"kind"`
	BaseDuration       float64 `yaml:"base_duration"`
	TickRate           float64 `yaml:"tick_rate"`
	BaseDotPercent     float64 `yaml:"base_dot_percent"`
	StackingKind       string  `yaml:"stacking_kind"`
	MaxStacks          int     `yaml:"max_stacks"`
	StackEffectiveness float64 `yaml:"stack_effectiveness"`
	MovingMultiplier   float64 `yaml:"moving_multiplier"`
}

func parseAilmentKind(name string) (stat.AilmentKind, error) {
	for _, k := range stat.AilmentKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("config: unknown ailment kind %q", name)
}

func parseStackingKind(name string) (effect.StackingKind, error) {
	switch name {
	case "", "strongest_only":
		return effect.StrongestOnly, nil
	case "unlimited":
		return effect.Unlimited, nil
	case "limited":
		return effect.Limited, nil
	default:
		return 0, fmt.Errorf("config: unknown stacking kind %q", name)
	}
}

// LoadAilmentDefaults reads a YAML file of AilmentOverride rows and applies
// them on top of effect.DefaultRegistry(), returning the merged table. A
// missing file is not an error here -- callers that require overrides check
// os.IsNotExist themselves; this mirrors the teacher's read-then-parse
// shape without the circuit breaker/retry wrapping a local, one-shot
// startup read doesn't need.
func LoadAilmentDefaults(filename string) (effect.Defaults, error) {
	defaults := effect.DefaultRegistry()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("no ailment override file, using compiled defaults")
			return defaults, nil
		}
		return defaults, fmt.Errorf("config: reading ailment registry: %w", err)
	}

	var overrides []AilmentOverride
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return defaults, fmt.Errorf("config: parsing ailment registry: %w", err)
	}
	log.WithFields(logrus.Fields{"file": filename, "overrides": len(overrides)}).Info("loaded ailment overrides")

	for _, o := range overrides {
		kind, err := parseAilmentKind(o.Kind)
		if err != nil {
			return defaults, err
		}
		row := defaults.For(kind)
		if o.BaseDuration > 0 {
			row.BaseDuration = o.BaseDuration
		}
		if o.TickRate > 0 {
			row.TickRate = o.TickRate
		}
		if o.BaseDotPercent > 0 {
			row.BaseDotPercent = o.BaseDotPercent
		}
		if o.MovingMultiplier > 0 {
			row.MovingMultiplier = o.MovingMultiplier
		}
		stackingKind, err := parseStackingKind(o.StackingKind)
		if err != nil {
			return defaults, err
		}
		if o.StackingKind != "" {
			row.Stacking.Kind = stackingKind
		}
		if o.MaxStacks > 0 {
			row.MaxStacks = o.MaxStacks
			row.Stacking.MaxStacks = o.MaxStacks
		}
		if o.StackEffectiveness > 0 {
			row.Stacking.StackEffectiveness = o.StackEffectiveness
		}
		defaults.Set(kind, row)
	}

	return defaults, nil
}

// skillTagNames maps the YAML skill tag vocabulary to skill.Tag.
var skillTagNames = map[string]skill.Tag{
	"attack":     skill.TagAttack,
	"spell":      skill.TagSpell,
	"physical":   skill.TagPhysical,
	"fire":       skill.TagFire,
	"cold":       skill.TagCold,
	"lightning":  skill.TagLightning,
	"chaos":      skill.TagChaos,
	"elemental":  skill.TagElemental,
	"melee":      skill.TagMelee,
	"ranged":     skill.TagRanged,
	"projectile": skill.TagProjectile,
	"aoe":        skill.TagAoe,
}

var damageTypeNames = map[string]stat.DamageType{
	"physical":  stat.Physical,
	"fire":      stat.Fire,
	"cold":      stat.Cold,
	"lightning": stat.Lightning,
	"chaos":     stat.Chaos,
}

// skillFile is the YAML shape one skill definition file unmarshals into.
type skillFile struct {
	ID                  string             `yaml:"id"`
	Name                string             `yaml:"name"`
	BaseDamages         []baseDamageYAML   `yaml:"base_damages"`
	WeaponEffectiveness float64            `yaml:"weapon_effectiveness"`
	DamageEffectiveness float64            `yaml:"damage_effectiveness"`
	AttackSpeedModifier float64            `yaml:"attack_speed_modifier"`
	BaseCritChance      float64            `yaml:"base_crit_chance"`
	CritMultiplierBonus float64            `yaml:"crit_multiplier_bonus"`
	Tags                []string           `yaml:"tags"`
	HitsPerAttack       int                `yaml:"hits_per_attack"`
	CanChain            bool               `yaml:"can_chain"`
	ChainCount          int                `yaml:"chain_count"`
	PierceChance        float64            `yaml:"pierce_chance"`
	TypeEffectiveness   map[string]float64 `yaml:"type_effectiveness"`
	DamageConversions   damageConversionsYAML   `yaml:"damage_conversions"`
	StatusConversions   statusConversionsYAML   `yaml:"status_conversions"`
}

// damageConversionsYAML is the YAML shape of the eight fixed
// damage-type-to-damage-type conversion legs (percentages, 0-100).
type damageConversionsYAML struct {
	PhysicalToFire      float64 `yaml:"physical_to_fire"`
	PhysicalToCold      float64 `yaml:"physical_to_cold"`
	PhysicalToLightning float64 `yaml:"physical_to_lightning"`
	PhysicalToChaos     float64 `yaml:"physical_to_chaos"`
	LightningToFire     float64 `yaml:"lightning_to_fire"`
	LightningToCold     float64 `yaml:"lightning_to_cold"`
	ColdToFire          float64 `yaml:"cold_to_fire"`
	FireToChaos         float64 `yaml:"fire_to_chaos"`
}

func (c damageConversionsYAML) toDomain() skill.DamageConversions {
	return skill.DamageConversions{
		PhysicalToFire:      c.PhysicalToFire / 100.0,
		PhysicalToCold:      c.PhysicalToCold / 100.0,
		PhysicalToLightning: c.PhysicalToLightning / 100.0,
		PhysicalToChaos:     c.PhysicalToChaos / 100.0,
		LightningToFire:     c.LightningToFire / 100.0,
		LightningToCold:     c.LightningToCold / 100.0,
		ColdToFire:          c.ColdToFire / 100.0,
		FireToChaos:         c.FireToChaos / 100.0,
	}
}

// statusConversionsYAML is the YAML shape of the ten fixed
// damage-type-to-ailment status conversion legs (percentages, 0-100).
type statusConversionsYAML struct {
	PhysicalToPoison  float64 `yaml:"physical_to_poison"`
	ChaosToPoison     float64 `yaml:"chaos_to_poison"`
	PhysicalToBleed   float64 `yaml:"physical_to_bleed"`
	FireToBurn        float64 `yaml:"fire_to_burn"`
	ColdToFreeze      float64 `yaml:"cold_to_freeze"`
	ColdToChill       float64 `yaml:"cold_to_chill"`
	LightningToStatic float64 `yaml:"lightning_to_static"`
	ChaosToFear       float64 `yaml:"chaos_to_fear"`
	PhysicalToSlow    float64 `yaml:"physical_to_slow"`
	ColdToSlow        float64 `yaml:"cold_to_slow"`
}

func (c statusConversionsYAML) toDomain() skill.SkillStatusConversions {
	return skill.SkillStatusConversions{
		PhysicalToPoison:  c.PhysicalToPoison / 100.0,
		ChaosToPoison:     c.ChaosToPoison / 100.0,
		PhysicalToBleed:   c.PhysicalToBleed / 100.0,
		FireToBurn:        c.FireToBurn / 100.0,
		ColdToFreeze:      c.ColdToFreeze / 100.0,
		ColdToChill:       c.ColdToChill / 100.0,
		LightningToStatic: c.LightningToStatic / 100.0,
		ChaosToFear:       c.ChaosToFear / 100.0,
		PhysicalToSlow:    c.PhysicalToSlow / 100.0,
		ColdToSlow:        c.ColdToSlow / 100.0,
	}
}

type baseDamageYAML struct {
	Type string  `yaml:"type"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	// Dice, when set, overrides Min/Max with a dice-expression range
	// ("2d6+3") instead of requiring the author to compute bounds by hand.
	Dice string `yaml:"dice"`
}

func (f skillFile) toGenerator() (skill.DamagePacketGenerator, error) {
	gen := skill.DamagePacketGenerator{
		ID:                  f.ID,
		Name:                f.Name,
		WeaponEffectiveness: f.WeaponEffectiveness,
		DamageEffectiveness: f.DamageEffectiveness,
		AttackSpeedModifier: f.AttackSpeedModifier,
		BaseCritChance:      f.BaseCritChance,
		CritMultiplierBonus: f.CritMultiplierBonus,
		HitsPerAttack:       f.HitsPerAttack,
		CanChain:            f.CanChain,
		ChainCount:          f.ChainCount,
		PierceChance:        f.PierceChance,
		TypeEffectiveness:   skill.DefaultDamageTypeEffectiveness(),
		DamageConversions:   f.DamageConversions.toDomain(),
		StatusConversions:   f.StatusConversions.toDomain(),
	}
	if gen.DamageEffectiveness == 0 {
		gen.DamageEffectiveness = 1.0
	}
	if gen.AttackSpeedModifier == 0 {
		gen.AttackSpeedModifier = 1.0
	}
	if gen.HitsPerAttack == 0 {
		gen.HitsPerAttack = 1
	}

	for _, bd := range f.BaseDamages {
		dt, ok := damageTypeNames[bd.Type]
		if !ok {
			return gen, fmt.Errorf("config: unknown damage type %q in skill %q", bd.Type, f.ID)
		}
		min, max := bd.Min, bd.Max
		if bd.Dice != "" {
			var err error
			min, max, err = ParseDiceRange(bd.Dice)
			if err != nil {
				return gen, fmt.Errorf("config: skill %q: %w", f.ID, err)
			}
		}
		gen.BaseDamages = append(gen.BaseDamages, skill.BaseDamage{Type: dt, Min: min, Max: max})
	}

	for _, tag := range f.Tags {
		t, ok := skillTagNames[tag]
		if !ok {
			return gen, fmt.Errorf("config: unknown skill tag %q in skill %q", tag, f.ID)
		}
		gen.Tags = append(gen.Tags, t)
	}

	for name, value := range f.TypeEffectiveness {
		dt, ok := damageTypeNames[name]
		if !ok {
			return gen, fmt.Errorf("config: unknown damage type %q in skill %q type_effectiveness", name, f.ID)
		}
		switch dt {
		case stat.Physical:
			gen.TypeEffectiveness.Physical = value
		case stat.Fire:
			gen.TypeEffectiveness.Fire = value
		case stat.Cold:
			gen.TypeEffectiveness.Cold = value
		case stat.Lightning:
			gen.TypeEffectiveness.Lightning = value
		case stat.Chaos:
			gen.TypeEffectiveness.Chaos = value
		}
	}

	return gen, nil
}

// LoadSkillLibrary walks dir for *.yaml files, each describing one skill,
// and returns the parsed DamagePacketGenerator set keyed by ID. Grounded
// on the teacher's directory-walk spell loader: one definition per file,
// skip subdirectories, fail fast on the first malformed file rather than
// silently dropping it.
func LoadSkillLibrary(dir string) (map[string]skill.DamagePacketGenerator, error) {
	library := make(map[string]skill.DamagePacketGenerator)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("dir", dir).Debug("no skill directory, returning empty library")
			return library, nil
		}
		return nil, fmt.Errorf("config: reading skill directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading skill file %s: %w", path, err)
		}

		var sf skillFile
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("config: parsing skill file %s: %w", path, err)
		}

		gen, err := sf.toGenerator()
		if err != nil {
			return nil, err
		}
		library[gen.ID] = gen
	}

	log.WithFields(logrus.Fields{"dir": dir, "skills": len(library)}).Info("loaded skill library")
	return library, nil
}

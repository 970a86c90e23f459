// Command statsim drives a scripted combat scenario through the stat,
// skill, and combat packages and prints a tick-by-tick log plus a DPS
// estimate -- the in-process equivalent of the teacher's cmd/*-demo
// programs, adapted from flag-parsed Config + a testable run(cfg) error
// to a tick loop over pkg/combat instead of pkg/pcg content generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"statcore/pkg/combat"
	"statcore/pkg/config"
	"statcore/pkg/effect"
	"statcore/pkg/skill"
	"statcore/pkg/stat"
	"statcore/pkg/statblock"
)

// Cfg holds the command-line configuration for the simulation.
type Cfg struct {
	Seed        int64
	Ticks       int
	TickSeconds float64
	MetricsAddr string
	SkillsDir   string
	AilmentFile string
}

func parseFlags() *Cfg {
	cfg := &Cfg{}
	flag.Int64Var(&cfg.Seed, "seed", 42, "RNG seed for deterministic runs")
	flag.IntVar(&cfg.Ticks, "ticks", 10, "number of attack ticks to simulate")
	flag.Float64Var(&cfg.TickSeconds, "tick-seconds", 1.0, "simulated seconds between ticks")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	flag.StringVar(&cfg.SkillsDir, "skills-dir", "", "directory of skill YAML files (basic_attack used if empty)")
	flag.StringVar(&cfg.AilmentFile, "ailments", "", "YAML file of ailment default overrides")
	flag.Parse()
	return cfg
}

func buildAttacker() statblock.StatBlock {
	sources := []stat.Source{
		stat.NewBaseStats(20),
		stat.NewGear(stat.SlotMainHand, stat.Item{
			BaseTypeID: "rusty_sword",
			Damage: &stat.ItemDamage{
				Damages:        []stat.ItemDamageRoll{{Type: stat.Physical, Min: 10, Max: 20}},
				AttackSpeed:    1.2,
				CriticalChance: 5.0,
			},
		}),
		stat.NewPassive("fire_mastery", stat.PassiveModifier{Stat: stat.IncreasedFireDamage, Value: 40}),
		stat.NewBuff("berserk", "Berserk", 30, false,
			stat.BuffModifier{Stat: stat.IncreasedPhysicalDamage, ValuePerStack: 25}),
	}
	return statblock.New("attacker").Rebuild(sources)
}

func buildDefender() statblock.StatBlock {
	sources := []stat.Source{
		stat.NewBaseStats(20),
		stat.NewGear(stat.SlotBodyArmour, stat.Item{
			BaseTypeID: "plate_vest",
			Defenses:   stat.ItemDefenses{Armour: 400, Evasion: 100},
		}),
	}
	return statblock.New("defender").Rebuild(sources)
}

func run(cfg *Cfg) error {
	log := logrus.WithField("component", "statsim")

	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		combat.RegisterMetrics(registry)
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			log.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	defaults := effect.DefaultRegistry()
	if cfg.AilmentFile != "" {
		var err error
		defaults, err = config.LoadAilmentDefaults(cfg.AilmentFile)
		if err != nil {
			return fmt.Errorf("loading ailment defaults: %w", err)
		}
	}

	gen := skill.BasicAttack()
	if cfg.SkillsDir != "" {
		library, err := config.LoadSkillLibrary(cfg.SkillsDir)
		if err != nil {
			return fmt.Errorf("loading skill library: %w", err)
		}
		if len(library) > 0 {
			for _, g := range library {
				gen = g
				break
			}
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	attacker := buildAttacker()
	defender := buildDefender()

	estimatedDPS := skill.CalculateSkillDPS(attacker, gen, defaults)
	fmt.Printf("=== statsim: %s vs %s ===\n", attacker.ID, defender.ID)
	fmt.Printf("estimated DPS (RNG-free): %.2f\n\n", estimatedDPS)

	limiter := rate.NewLimiter(rate.Every(time.Duration(cfg.TickSeconds*float64(time.Second))), 1)
	ctx := context.Background()

	for tick := 1; tick <= cfg.Ticks && defender.IsAlive(); tick++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("tick limiter: %w", err)
		}

		packet := skill.CalculateDamage(attacker, gen, attacker.ID, rng, defaults)
		var result combat.CombatResult
		defender, result = combat.ResolveDamage(defender, packet, rng, defaults, config.DefaultConstants())

		fmt.Printf("tick %02d: dealt %.1f damage (crit=%v, evasion_cap=%v) -- defender life %.1f/%.1f\n",
			tick, result.TotalDamage, packet.IsCritical, result.TriggeredEvasionCap,
			defender.CurrentLife, defender.MaxLife.Compute())

		var tickResult effect.TickResult
		defender, tickResult = defender.TickEffects(cfg.TickSeconds, false, defaults)
		if tickResult.DamageDealt > 0 {
			fmt.Printf("         ailments dealt %.1f DoT damage -- defender life %.1f/%.1f\n",
				tickResult.DamageDealt, defender.CurrentLife, defender.MaxLife.Compute())
		}
		if tickResult.IsKillingBlow {
			fmt.Println("         ailments finished the defender off")
		}
	}

	if !defender.IsAlive() {
		fmt.Println("\ndefender has died")
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

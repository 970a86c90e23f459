// Package config holds the tunable Constants every formula in pkg/defense
// takes as an explicit parameter, plus YAML loaders for the ailment default
// table and a skill library -- both overridable at startup so a tuning pass
// never requires a recompile.
package config

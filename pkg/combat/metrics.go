package combat

import "github.com/prometheus/client_golang/prometheus"

// Resolutions counts every ResolveDamage call, labeled only by whether it
// proved fatal (killing_blow). cmd/statsim registers this into its own
// registry; packages under test never register it, so repeated package
// tests don't collide on prometheus's default registry.
var Resolutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "statcore_combat_resolutions_total",
		Help: "Total number of damage packets resolved against a defender.",
	},
	[]string{"killing_blow"},
)

// EvasionCapsTriggered counts resolutions where the accuracy-vs-evasion
// cap reduced the incoming hit.
var EvasionCapsTriggered = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "statcore_combat_evasion_caps_triggered_total",
		Help: "Total number of resolutions where the evasion damage cap reduced the hit.",
	},
)

// RegisterMetrics adds this package's collectors to reg. Safe to call once
// per process; calling it against a registry that already holds these
// collectors panics, matching prometheus's own MustRegister contract.
func RegisterMetrics(reg *prometheus.Registry) {
	reg.MustRegister(Resolutions, EvasionCapsTriggered)
}

package circuit

import (
	"time"
)

// CircuitConfig is the fixed policy for one engine instance: window sizes, trip thresholds, cooldown, ledger retention, and the coordination heuristic knobs. Set once at construction; the engine never mutates it.
type CircuitConfig struct {
	// ShortWindowThreshold actions within ShortWindow trips the circuit.
	ShortWindow          time.Duration
	ShortWindowThreshold int

	// MediumWindowThreshold actions within MediumWindow trips the circuit. The coordination detector also runs over this window.
	MediumWindow          time.Duration
	MediumWindowThreshold int

	// LongWindowThreshold actions within LongWindow trips the circuit.
	LongWindow          time.Duration
	LongWindowThreshold int

	// How long a tripped circuit stays tripped before an inbound action can reset it.
	Cooldown time.Duration

	// Actions older than Retention are evicted from the ledger. Must be at least LongWindow or the long-window count undercounts.
	Retention time.Duration

	// Coordination detection needs at least CoordinationMinUsers distinct recent actors, and labels the trip coordinated when their average pairwise target-set Jaccard similarity meets CoordinationThreshold.
	CoordinationMinUsers  int
	CoordinationThreshold float64
}

// DefaultCircuitConfig returns the production policy: 10 actions per hour, 50 per 24 hours, or 200 per 7 days trips the circuit; trips cool down after 24 hours; the ledger retains 7 days of history; 5+ users with 60%+ average target overlap counts as coordinated.
func DefaultCircuitConfig() CircuitConfig {
	return CircuitConfig{
		ShortWindow:           time.Hour,
		ShortWindowThreshold:  10,
		MediumWindow:          24 * time.Hour,
		MediumWindowThreshold: 50,
		LongWindow:            7 * 24 * time.Hour,
		LongWindowThreshold:   200,
		Cooldown:              24 * time.Hour,
		Retention:             7 * 24 * time.Hour,
		CoordinationMinUsers:  5,
		CoordinationThreshold: 0.6,
	}
}

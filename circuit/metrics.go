package circuit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var decisionCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "circuitguard_decisions",
	Help: "Number of negative-action decisions, by outcome",
}, []string{"outcome"})

var circuitTripCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "circuitguard_circuit_trips",
	Help: "Number of circuits tripped, by cause",
}, []string{"cause"})

var circuitResetCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "circuitguard_circuit_resets",
	Help: "Number of tripped circuits reset after cooldown",
})

var coordinationDetectedCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "circuitguard_coordination_detected",
	Help: "Number of medium-window trips labeled as coordinated",
})

var prunedActionCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "circuitguard_pruned_actions",
	Help: "Number of ledger actions evicted past the retention horizon",
})

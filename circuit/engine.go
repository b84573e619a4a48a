package circuit

import (
	"log/slog"
	"sync"
	"time"
)

// Engine is the protection circuit: it owns the action ledger and the per-target circuit states, and decides per inbound action whether downstream scoring should count it.
//
// All state is process-local and lost on restart. A single mutex serializes every call, so the prune/check/record/evaluate sequence is atomic per action and the coordination detector sees a consistent cross-target view.
type Engine struct {
	logger *slog.Logger
	cfg    CircuitConfig

	lk     sync.Mutex
	ledger *actionLedger
	states map[uint64]CircuitState
}

func NewEngine(cfg CircuitConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: logger,
		cfg:    cfg,
		ledger: newActionLedger(),
		states: make(map[uint64]CircuitState),
	}
}

func (e *Engine) Config() CircuitConfig {
	return e.cfg
}

// ShouldCountAction is the main check: should this negative action influence the target's visibility scores, or be suppressed? This is the only entry point that mutates engine state.
//
// Order matters: stale data is pruned first, then an existing trip is honored (or reset if cooled down), and only then is the action recorded and the thresholds re-evaluated. An action arriving while the target is tripped is rejected without being recorded, so a tripped target's history stops growing until cooldown.
func (e *Engine) ShouldCountAction(action NegativeAction, now time.Time) CircuitDecision {
	e.lk.Lock()
	defer e.lk.Unlock()

	e.pruneLocked(now)

	if state, ok := e.states[action.TargetID]; ok && state.IsTripped {
		if e.cooledDown(state, now) {
			delete(e.states, action.TargetID)
			circuitResetCount.Inc()
			e.logger.Info("circuit cooled down, resetting", "targetID", action.TargetID)
		} else {
			decisionCount.WithLabelValues("suppressed").Inc()
			return CircuitDecision{
				CountAction:    false,
				CircuitTripped: true,
				Reason:         state.Reason(e.cfg),
				State:          state,
			}
		}
	}

	e.ledger.record(action)

	state := e.evaluateTarget(action.TargetID, now)
	if state.IsTripped {
		e.states[action.TargetID] = state
		circuitTripCount.WithLabelValues(string(state.Cause)).Inc()
		decisionCount.WithLabelValues("suppressed").Inc()
		e.logger.Warn("circuit tripped",
			"targetID", action.TargetID,
			"cause", state.Cause,
			"count1hr", state.Count1hr,
			"count24hr", state.Count24hr,
			"count7day", state.Count7day)
		return CircuitDecision{
			CountAction:    false,
			CircuitTripped: true,
			Reason:         state.Reason(e.cfg),
			State:          state,
		}
	}

	decisionCount.WithLabelValues("counted").Inc()
	return CircuitDecision{
		CountAction:    true,
		CircuitTripped: false,
		Reason:         "Action counted normally",
		State:          state,
	}
}

// GetCircuitStatus returns the stored circuit state for a target, or the "No data" default for a target that has never tripped. Read-only; no side effects.
func (e *Engine) GetCircuitStatus(targetID uint64) CircuitState {
	e.lk.Lock()
	defer e.lk.Unlock()

	if state, ok := e.states[targetID]; ok {
		return state
	}
	return defaultCircuitState()
}

// evaluateTarget computes the three window counts against the current ledger and decides whether the circuit should trip. Shorter windows take precedence in the reported cause when several thresholds are exceeded at once. Caller must hold the lock.
func (e *Engine) evaluateTarget(targetID uint64, now time.Time) CircuitState {
	if len(e.ledger.actions[targetID]) == 0 {
		return defaultCircuitState()
	}

	count1hr := e.ledger.countSince(targetID, now.Add(-e.cfg.ShortWindow))
	count24hr := e.ledger.countSince(targetID, now.Add(-e.cfg.MediumWindow))
	count7day := e.ledger.countSince(targetID, now.Add(-e.cfg.LongWindow))

	state := CircuitState{
		Cause:     CauseNotTripped,
		Count1hr:  count1hr,
		Count24hr: count24hr,
		Count7day: count7day,
	}

	if count1hr >= e.cfg.ShortWindowThreshold {
		state.IsTripped = true
		state.TrippedAt = &now
		state.Cause = CauseShortWindow
		return state
	}

	if count24hr >= e.cfg.MediumWindowThreshold {
		state.IsTripped = true
		state.TrippedAt = &now
		state.Cause = CauseMediumWindow
		if detectCoordination(e.ledger, targetID, now, e.cfg) {
			state.Cause = CauseMediumWindowCoordinated
			coordinationDetectedCount.Inc()
		}
		return state
	}

	if count7day >= e.cfg.LongWindowThreshold {
		state.IsTripped = true
		state.TrippedAt = &now
		state.Cause = CauseLongWindow
		return state
	}

	return state
}

// pruneLocked evicts ledger entries past the retention horizon and circuit states whose cooldown has elapsed. Runs before every decision so counts always reflect a bounded working set. Caller must hold the lock.
func (e *Engine) pruneLocked(now time.Time) {
	if evicted := e.ledger.prune(now.Add(-e.cfg.Retention)); evicted > 0 {
		prunedActionCount.Add(float64(evicted))
	}

	for targetID, state := range e.states {
		if e.cooledDown(state, now) {
			delete(e.states, targetID)
			circuitResetCount.Inc()
		}
	}
}

// cooledDown reports whether a tripped state's cooldown has fully elapsed. A nil TrippedAt (never possible for a stored tripped state, but tolerated) counts as cooled. Elapsed time saturates at zero so a TrippedAt in the future never underflows.
func (e *Engine) cooledDown(state CircuitState, now time.Time) bool {
	if state.TrippedAt == nil {
		return true
	}
	return elapsedSince(now, *state.TrippedAt) > e.cfg.Cooldown
}

// elapsedSince returns now minus t, saturating at zero. Clock anomalies (future timestamps, non-monotonic system time) must read as "just happened", never as a negative duration.
func elapsedSince(now, t time.Time) time.Duration {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

package circuit

import (
	"fmt"
	"time"
)

// TripCause is the structured reason a circuit is (or is not) tripped. Human-readable text is rendered separately; see CircuitState.Reason.
type TripCause string

var (
	CauseNotTripped              = TripCause("not-tripped")
	CauseShortWindow             = TripCause("short-window")
	CauseMediumWindow            = TripCause("medium-window")
	CauseMediumWindowCoordinated = TripCause("medium-window-coordinated")
	CauseLongWindow              = TripCause("long-window")
)

// CircuitState is the per-target circuit snapshot: whether the target is tripped, when, why, and the three window counts observed at the last evaluation.
//
// Invariant: IsTripped false implies TrippedAt nil.
type CircuitState struct {
	IsTripped bool       `json:"isTripped"`
	TrippedAt *time.Time `json:"trippedAt,omitempty"`
	Cause     TripCause  `json:"cause"`

	Count1hr  int `json:"count1hr"`
	Count24hr int `json:"count24hr"`
	Count7day int `json:"count7day"`
}

func defaultCircuitState() CircuitState {
	return CircuitState{
		IsTripped: false,
		Cause:     CauseNotTripped,
	}
}

// Reason renders the human-readable explanation for this state under the given policy. A never-evaluated target carries all-zero counts (any evaluated state counts at least the action that produced it) and reads as "No data".
func (s CircuitState) Reason(cfg CircuitConfig) string {
	switch s.Cause {
	case CauseShortWindow:
		return fmt.Sprintf("Circuit tripped: %d actions in 1 hour (threshold: %d)", s.Count1hr, cfg.ShortWindowThreshold)
	case CauseMediumWindow:
		return fmt.Sprintf("Circuit tripped: %d actions in 24 hours (threshold: %d)", s.Count24hr, cfg.MediumWindowThreshold)
	case CauseMediumWindowCoordinated:
		return fmt.Sprintf("Circuit tripped: %d coordinated actions in 24 hours (threshold: %d)", s.Count24hr, cfg.MediumWindowThreshold)
	case CauseLongWindow:
		return fmt.Sprintf("Circuit tripped: %d actions in 7 days (threshold: %d)", s.Count7day, cfg.LongWindowThreshold)
	default:
		if s.Count1hr == 0 && s.Count24hr == 0 && s.Count7day == 0 {
			return "No data"
		}
		return "Circuit normal"
	}
}

// CircuitDecision is what the engine returns for one inbound action: whether downstream scoring should honor it, the circuit status, and the state snapshot the decision was made against. Not retained by the engine.
type CircuitDecision struct {
	CountAction    bool         `json:"countAction"`
	CircuitTripped bool         `json:"circuitTripped"`
	Reason         string       `json:"reason"`
	State          CircuitState `json:"state"`
}

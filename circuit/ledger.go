package circuit

import (
	"time"
)

// actionLedger is the bounded per-target history of negative actions. Ordered by arrival within each target; the engine's lock covers all access.
type actionLedger struct {
	actions map[uint64][]NegativeAction
}

func newActionLedger() *actionLedger {
	return &actionLedger{
		actions: make(map[uint64][]NegativeAction),
	}
}

func (l *actionLedger) record(a NegativeAction) {
	l.actions[a.TargetID] = append(l.actions[a.TargetID], a)
}

// prune drops every action with a timestamp at or before cutoff, then drops targets left with no actions. Returns the number of actions evicted.
func (l *actionLedger) prune(cutoff time.Time) int {
	evicted := 0
	for targetID, actions := range l.actions {
		kept := actions[:0]
		for _, a := range actions {
			if a.Timestamp.After(cutoff) {
				kept = append(kept, a)
			}
		}
		evicted += len(actions) - len(kept)
		if len(kept) == 0 {
			delete(l.actions, targetID)
			continue
		}
		l.actions[targetID] = kept
	}
	return evicted
}

// countSince returns the number of actions against targetID with a timestamp strictly after cutoff.
func (l *actionLedger) countSince(targetID uint64, cutoff time.Time) int {
	count := 0
	for _, a := range l.actions[targetID] {
		if a.Timestamp.After(cutoff) {
			count++
		}
	}
	return count
}

// actionsSince returns the actions against targetID with a timestamp strictly after cutoff, in arrival order.
func (l *actionLedger) actionsSince(targetID uint64, cutoff time.Time) []NegativeAction {
	var recent []NegativeAction
	for _, a := range l.actions[targetID] {
		if a.Timestamp.After(cutoff) {
			recent = append(recent, a)
		}
	}
	return recent
}

// userTargets returns the distinct targets userID has acted against anywhere in the ledger, with a timestamp strictly after cutoff. Note this includes whichever target is currently under evaluation; see the coordination detector.
func (l *actionLedger) userTargets(userID uint64, cutoff time.Time) map[uint64]struct{} {
	targets := make(map[uint64]struct{})
	for targetID, actions := range l.actions {
		for _, a := range actions {
			if a.UserID == userID && a.Timestamp.After(cutoff) {
				targets[targetID] = struct{}{}
				break
			}
		}
	}
	return targets
}

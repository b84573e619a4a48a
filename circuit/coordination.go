package circuit

import (
	"time"
)

// detectCoordination reports whether the users recently acting against targetID look like a coordinated brigade rather than independent organic feedback.
//
// The heuristic: take every distinct user who acted against the target within the medium window, build each user's target set (every target they acted against anywhere in the ledger within that window), and average the pairwise Jaccard similarity of those sets. Users independently piling onto the same narrow set of targets score high; users with broad unrelated histories score low. Pairs with an empty union are skipped, not counted as zero.
//
// The target under evaluation is itself a member of every qualifying user's target set, which inflates similarity whenever multiple users share only that one target. That is the current product behavior (shared targeting is the signal); keep it unless intent is clarified.
//
// Advisory only: the result changes the trip cause label, never the accept/reject outcome.
func detectCoordination(l *actionLedger, targetID uint64, now time.Time, cfg CircuitConfig) bool {
	cutoff := now.Add(-cfg.MediumWindow)

	recent := l.actionsSince(targetID, cutoff)
	if len(recent) < cfg.CoordinationMinUsers {
		return false
	}

	users := make(map[uint64]struct{})
	for _, a := range recent {
		users[a.UserID] = struct{}{}
	}
	if len(users) < cfg.CoordinationMinUsers {
		return false
	}

	targetSets := make(map[uint64]map[uint64]struct{}, len(users))
	userList := make([]uint64, 0, len(users))
	for userID := range users {
		targetSets[userID] = l.userTargets(userID, cutoff)
		userList = append(userList, userID)
	}

	totalSimilarity := 0.0
	pairCount := 0
	for i := 0; i < len(userList); i++ {
		for j := i + 1; j < len(userList); j++ {
			similarity, ok := jaccard(targetSets[userList[i]], targetSets[userList[j]])
			if !ok {
				continue
			}
			totalSimilarity += similarity
			pairCount++
		}
	}
	if pairCount == 0 {
		return false
	}
	return totalSimilarity/float64(pairCount) >= cfg.CoordinationThreshold
}

// jaccard computes |a ∩ b| / |a ∪ b|. The second return is false when the union is empty and the ratio is undefined.
func jaccard(a, b map[uint64]struct{}) (float64, bool) {
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0, false
	}
	return float64(intersection) / float64(union), true
}

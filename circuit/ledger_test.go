package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerWindowBoundary(t *testing.T) {
	assert := assert.New(t)
	l := newActionLedger()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	l.record(NegativeAction{UserID: 1, TargetID: 1, ActionType: ActionBlock, Timestamp: now.Add(-time.Hour)})
	l.record(NegativeAction{UserID: 2, TargetID: 1, ActionType: ActionBlock, Timestamp: now.Add(-30 * time.Minute)})
	l.record(NegativeAction{UserID: 3, TargetID: 1, ActionType: ActionBlock, Timestamp: now})

	// boundary is strict: an action exactly one hour old is outside the one-hour window
	assert.Equal(2, l.countSince(1, now.Add(-time.Hour)))
	assert.Equal(3, l.countSince(1, now.Add(-2*time.Hour)))
	assert.Equal(0, l.countSince(2, now.Add(-2*time.Hour)))
}

func TestLedgerPrune(t *testing.T) {
	assert := assert.New(t)
	l := newActionLedger()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)

	l.record(NegativeAction{UserID: 1, TargetID: 1, ActionType: ActionBlock, Timestamp: now.Add(-8 * 24 * time.Hour)})
	l.record(NegativeAction{UserID: 2, TargetID: 1, ActionType: ActionBlock, Timestamp: now.Add(-time.Hour)})
	l.record(NegativeAction{UserID: 3, TargetID: 2, ActionType: ActionMute, Timestamp: cutoff})

	evicted := l.prune(cutoff)
	assert.Equal(2, evicted)
	assert.Equal(1, len(l.actions[1]))

	// targets with nothing left are dropped entirely
	_, ok := l.actions[2]
	assert.False(ok)
}

func TestLedgerUserTargets(t *testing.T) {
	assert := assert.New(t)
	l := newActionLedger()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	l.record(NegativeAction{UserID: 9, TargetID: 1, ActionType: ActionReport, Timestamp: now.Add(-time.Hour)})
	l.record(NegativeAction{UserID: 9, TargetID: 2, ActionType: ActionBlock, Timestamp: now.Add(-2 * time.Hour)})
	l.record(NegativeAction{UserID: 9, TargetID: 3, ActionType: ActionBlock, Timestamp: now.Add(-48 * time.Hour)})
	l.record(NegativeAction{UserID: 8, TargetID: 4, ActionType: ActionMute, Timestamp: now.Add(-time.Hour)})

	targets := l.userTargets(9, cutoff)
	assert.Equal(2, len(targets))
	assert.Contains(targets, uint64(1))
	assert.Contains(targets, uint64(2))

	assert.Equal(0, len(l.userTargets(7, cutoff)))
}

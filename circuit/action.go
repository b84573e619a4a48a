package circuit

import (
	"fmt"
	"time"
)

// ActionType is the kind of negative signal a user can send against a target.
type ActionType string

var (
	ActionBlock         = ActionType("block")
	ActionMute          = ActionType("mute")
	ActionReport        = ActionType("report")
	ActionNotInterested = ActionType("not_interested")
)

func ParseActionType(raw string) (ActionType, error) {
	switch ActionType(raw) {
	case ActionBlock, ActionMute, ActionReport, ActionNotInterested:
		return ActionType(raw), nil
	default:
		return "", fmt.Errorf("unknown negative action type: %s", raw)
	}
}

// NegativeAction is one negative signal from a user against a target.
//
// Immutable once recorded. Users and targets are identified by opaque numeric IDs; this package never resolves them to accounts or content.
type NegativeAction struct {
	UserID     uint64     `json:"userID"`
	TargetID   uint64     `json:"targetID"`
	ActionType ActionType `json:"actionType"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Engagement score record and the circuit-decision application step.
//
// The protection circuit itself never touches scores; it only returns a decision. This package owns the collaborator side of that contract: the per-item engagement score record, and the step that zeroes exactly the negative-signal fields when a decision says the action should not count.
package scoring

import (
	"github.com/phoenix-social/circuitguard/circuit"
)

// EngagementScores is one item's predicted engagement signals, as fed to the ranking blender. Positive-engagement fields and negative-signal fields are kept flat here; only the four negative-signal fields are subject to circuit protection.
type EngagementScores struct {
	FavoriteScore         float64 `json:"favoriteScore"`
	ReplyScore            float64 `json:"replyScore"`
	RetweetScore          float64 `json:"retweetScore"`
	PhotoExpandScore      float64 `json:"photoExpandScore"`
	ClickScore            float64 `json:"clickScore"`
	ProfileClickScore     float64 `json:"profileClickScore"`
	VQVScore              float64 `json:"vqvScore"`
	ShareScore            float64 `json:"shareScore"`
	ShareViaDMScore       float64 `json:"shareViaDMScore"`
	ShareViaCopyLinkScore float64 `json:"shareViaCopyLinkScore"`
	DwellScore            float64 `json:"dwellScore"`
	QuoteScore            float64 `json:"quoteScore"`
	QuotedClickScore      float64 `json:"quotedClickScore"`
	FollowAuthorScore     float64 `json:"followAuthorScore"`
	NotInterestedScore    float64 `json:"notInterestedScore"`
	BlockAuthorScore      float64 `json:"blockAuthorScore"`
	MuteAuthorScore       float64 `json:"muteAuthorScore"`
	ReportScore           float64 `json:"reportScore"`
	DwellTime             float64 `json:"dwellTime"`
}

// ApplyCircuitDecision zeroes the negative-signal scores when the protection circuit decided the action should not count. Positive-engagement fields are never touched, in either case.
func ApplyCircuitDecision(scores *EngagementScores, decision *circuit.CircuitDecision) {
	if decision.CountAction {
		return
	}
	scores.NotInterestedScore = 0
	scores.BlockAuthorScore = 0
	scores.MuteAuthorScore = 0
	scores.ReportScore = 0
}

// Negative-action protection circuit for the scoring pipeline.
//
// This package (`github.com/phoenix-social/circuitguard/circuit`) decides, per inbound negative action (block, mute, report, not-interested), whether that action should be allowed to influence a target's visibility scores, or suppressed because the target is under a detected surge or coordinated-attack pattern. It keeps a bounded in-memory ledger of recent actions per target, evaluates multi-window volume thresholds, and runs a tripped/cooled-down circuit state machine. A coordination heuristic labels medium-window trips that look like brigading rather than organic feedback.
//
// See `cmd/breakerd` for a daemon built on this package.
package circuit

// Package protocol defines the JSON boundary of the decision bot: one request
// record in, one response record out.
package protocol

import (
	"bytes"
	"encoding/json"

	"tripoker/internal/statistics"
)

// Action is a decision output. The wire values are fixed literals.
type Action string

const (
	ActionFold  Action = "FOLD"
	ActionCall  Action = "CALL"
	ActionRaise Action = "RAISE"
)

// Valid reports whether the action is one of the three known literals
func (a Action) Valid() bool {
	return a == ActionFold || a == ActionCall || a == ActionRaise
}

// DefaultTotalRounds is assumed when the request omits total_rounds.
const DefaultTotalRounds = 1001

// State is a single decision request. OpponentStats and TotalRounds are
// optional context fields; missing stats count as zero.
type State struct {
	YourHole      []string                `json:"your_hole"`
	TableCard     string                  `json:"table_card"`
	OpponentStats statistics.ActionCounts `json:"opponent_stats"`
	TotalRounds   int                     `json:"total_rounds"`
}

// Response carries the chosen action back to the caller
type Response struct {
	Action Action `json:"action"`
}

// ParseState decodes a request record. Absent or malformed input yields an
// empty state rather than an error; the empty state drives the engine's
// fold-on-no-input path.
func ParseState(raw []byte) State {
	empty := State{TotalRounds: DefaultTotalRounds}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return empty
	}

	state := State{TotalRounds: DefaultTotalRounds}
	if err := json.Unmarshal(raw, &state); err != nil {
		return empty
	}
	return state
}

// MarshalDecision encodes the response record. Anything outside the three
// known actions is coerced to CALL: the boundary's last-resort default is
// deliberately distinct from the engine's internal FOLD-on-fault default, so
// a contract violation here never masquerades as a normal fold.
func MarshalDecision(a Action) []byte {
	if !a.Valid() {
		a = ActionCall
	}
	out, err := json.Marshal(Response{Action: a})
	if err != nil {
		// Response marshalling cannot fail for a plain string field.
		return []byte(`{"action":"CALL"}`)
	}
	return out
}

// Package services orchestrates the assistant lifecycle: prompt composition,
// action extraction from model replies, and risk-gated execution of the
// resulting plan.
package services

import (
	"encoding/json"
	"strings"

	"github.com/doeshing/cfai-go/internal/domain"
)

const fencedJSONMarker = "```json"

// wirePlan is the ActionPlan shape the assistant is prompted to emit.
type wirePlan struct {
	Actions     []wireAction `json:"actions"`
	Explanation string       `json:"explanation"`
}

type wireAction struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Params      map[string]any `json:"params"`
	Risk        string         `json:"risk"`
}

// Extract parses an action plan out of a free-form model reply. It never
// fails: it tries a fenced ```json block first, then the whole text, and
// degrades to an empty plan when neither parses. Most conversational replies
// carry no actionable payload and that is not an error.
func Extract(text string) domain.ActionPlan {
	if start := strings.Index(text, fencedJSONMarker); start >= 0 {
		rest := text[start+len(fencedJSONMarker):]
		if end := strings.Index(rest, "```"); end >= 0 {
			candidate := strings.TrimSpace(rest[:end])
			if plan, ok := decodePlan(candidate); ok {
				return plan
			}
			// A malformed fenced block falls back to the whole original
			// text, not to scanning for further fenced blocks.
		}
	}

	if plan, ok := decodePlan(strings.TrimSpace(text)); ok {
		return plan
	}

	return domain.ActionPlan{}
}

func decodePlan(raw string) (domain.ActionPlan, bool) {
	if raw == "" || raw[0] != '{' {
		return domain.ActionPlan{}, false
	}
	var wire wirePlan
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return domain.ActionPlan{}, false
	}

	plan := domain.ActionPlan{Explanation: wire.Explanation}
	for _, w := range wire.Actions {
		plan.Actions = append(plan.Actions, domain.Action{
			Kind:        domain.ParseActionKind(w.Type),
			RawType:     w.Type,
			Description: w.Description,
			Params:      w.Params,
			Risk:        domain.ParseRiskLevel(w.Risk),
		})
	}
	return plan, true
}

// Package domain defines core business entities and value objects for cfai.
//
// This file contains the action-plan model: the typed configuration changes
// the AI assistant proposes and the executor carries out. The domain layer is
// independent of infrastructure concerns and represents pure business logic
// and data structures.
package domain

import "strings"

// ActionKind is the closed set of configuration changes the executor knows
// how to dispatch. Tokens match the wire format emitted by the assistant.
type ActionKind string

const (
	KindTLSSettingChange      ActionKind = "ssl_set"
	KindResourceSettingChange ActionKind = "setting_update"
	KindDNSRecordCreate       ActionKind = "dns_create"
	KindDNSRecordUpdate       ActionKind = "dns_update"
	KindDNSRecordDelete       ActionKind = "dns_delete"
	KindCachePurge            ActionKind = "cache_purge"
	KindAccessRuleChange      ActionKind = "firewall_rule"

	// KindUnsupported marks a token the executor does not recognize. The
	// action is kept, not dropped, so the run can report it per item.
	KindUnsupported ActionKind = "unsupported"
)

// ParseActionKind maps a wire token to an ActionKind. Unknown tokens map to
// KindUnsupported so new kinds surface as explicit failures, never silently.
func ParseActionKind(token string) ActionKind {
	switch NormalizeToken(token) {
	case "ssl_set":
		return KindTLSSettingChange
	case "setting_update":
		return KindResourceSettingChange
	case "dns_create":
		return KindDNSRecordCreate
	case "dns_update":
		return KindDNSRecordUpdate
	case "dns_delete":
		return KindDNSRecordDelete
	case "cache_purge":
		return KindCachePurge
	case "firewall_rule":
		return KindAccessRuleChange
	default:
		return KindUnsupported
	}
}

// NormalizeToken canonicalizes a wire token: lower-cased, trimmed, hyphens
// folded to underscores. The assistant is inconsistent about spelling.
func NormalizeToken(token string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(token)), "-", "_")
}

// RiskLevel classifies how much confirmation an action requires.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"
)

// ParseRiskLevel maps a wire token to a RiskLevel. Unrecognized tokens become
// RiskUnknown, which is confirmed like medium and never like low.
func ParseRiskLevel(token string) RiskLevel {
	switch NormalizeToken(token) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	default:
		return RiskUnknown
	}
}

// Effective resolves RiskUnknown to RiskMedium for confirmation purposes.
func (r RiskLevel) Effective() RiskLevel {
	if r == RiskUnknown {
		return RiskMedium
	}
	return r
}

// Icon returns the marker used when listing actions for confirmation.
func (r RiskLevel) Icon() string {
	switch r {
	case RiskLow:
		return "🟢"
	case RiskMedium:
		return "🟡"
	case RiskHigh:
		return "🔴"
	default:
		return "⚪"
	}
}

// Action is a single proposed configuration change. Immutable once extracted;
// the executor never mutates Params.
type Action struct {
	Kind        ActionKind
	RawType     string
	Description string
	Params      map[string]any
	Risk        RiskLevel
}

// ActionPlan is the result of extraction: an ordered list of actions plus
// optional explanatory text. Order is significant and preserved end-to-end.
type ActionPlan struct {
	Actions     []Action
	Explanation string
}

// Empty reports whether the plan carries no actions.
func (p ActionPlan) Empty() bool {
	return len(p.Actions) == 0
}

// OutcomeStatus enumerates per-action execution results.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// Outcome is the result of attempting one action: a success message, a
// failure reason, or a skip (declined or aborted after an earlier failure).
type Outcome struct {
	Action  Action
	Status  OutcomeStatus
	Message string
}

// ExecutionReport aggregates the ordered outcomes of one execution run.
// It starts empty, is appended to as each action completes, and is returned
// once the run ends.
type ExecutionReport struct {
	RunID     string
	ZoneID    string
	Outcomes  []Outcome
	Succeeded int
	Failed    int
	Skipped   int
}

// Append records one outcome and updates the aggregate counters.
func (r *ExecutionReport) Append(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case OutcomeSuccess:
		r.Succeeded++
	case OutcomeFailed:
		r.Failed++
	case OutcomeSkipped:
		r.Skipped++
	}
}

// Total returns the number of actions accounted for in the report.
func (r ExecutionReport) Total() int {
	return len(r.Outcomes)
}

package domain

import "time"

// AuditRecord is one row of the execution audit log: a single action outcome
// within an execution run.
type AuditRecord struct {
	RunID       string    `json:"run_id"`
	Timestamp   time.Time `json:"timestamp"`
	Zone        string    `json:"zone"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Risk        string    `json:"risk"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
}

package domain

// IPAccessRuleTarget identifies what an access rule matches.
type IPAccessRuleTarget struct {
	Target string `json:"target"`
	Value  string `json:"value"`
}

// IPAccessRule is a firewall IP access rule (block / whitelist entry).
type IPAccessRule struct {
	ID            string             `json:"id,omitempty"`
	Mode          string             `json:"mode"`
	Notes         string             `json:"notes,omitempty"`
	Configuration IPAccessRuleTarget `json:"configuration"`
}

// CreateIPAccessRuleRequest is the payload for creating an access rule.
type CreateIPAccessRuleRequest struct {
	Mode          string             `json:"mode"`
	Configuration IPAccessRuleTarget `json:"configuration"`
	Notes         string             `json:"notes,omitempty"`
}

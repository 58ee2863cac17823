package domain

// Analysis is the assistant's reply to one request: the free-form content,
// the action plan extracted from it (possibly empty), and token accounting
// when the provider reports it.
type Analysis struct {
	Content    string
	Plan       ActionPlan
	TokensUsed int
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

type stubAnalyzer struct {
	content string
	err     error

	lastSystem string
	lastUser   string
}

func (s *stubAnalyzer) Chat(_ context.Context, systemPrompt, userMessage string) (ports.AnalysisResult, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userMessage
	return ports.AnalysisResult{Content: s.content, TokensUsed: 42}, s.err
}

type stubAudit struct {
	saved []domain.AuditRecord
	err   error
}

func (s *stubAudit) Save(records []domain.AuditRecord) error {
	s.saved = append(s.saved, records...)
	return s.err
}
func (s *stubAudit) Records(int, string) ([]domain.AuditRecord, error) { return s.saved, nil }
func (s *stubAudit) Clear() error                                      { return nil }

func TestAssistantAskExtractsPlan(t *testing.T) {
	analyzer := &stubAnalyzer{
		content: "I would add the record.\n```json\n" +
			`{"actions":[{"type":"dns_create","description":"add www","params":{"type":"A","name":"www","content":"1.2.3.4"},"risk":"low"}]}` +
			"\n```",
	}
	svc := &AssistantService{Analyzer: analyzer}

	analysis, err := svc.Ask(context.Background(), "add a www record")
	require.NoError(t, err)
	assert.Equal(t, 42, analysis.TokensUsed)
	require.Len(t, analysis.Plan.Actions, 1)
	assert.Equal(t, domain.KindDNSRecordCreate, analysis.Plan.Actions[0].Kind)
	assert.Contains(t, analyzer.lastSystem, "cfai assistant")
	assert.Equal(t, "add a www record", analyzer.lastUser)
}

func TestAssistantConversationalReplyYieldsEmptyPlan(t *testing.T) {
	analyzer := &stubAnalyzer{content: "Your setup already looks good."}
	svc := &AssistantService{Analyzer: analyzer}

	analysis, err := svc.Ask(context.Background(), "anything to improve?")
	require.NoError(t, err)
	assert.True(t, analysis.Plan.Empty())
	assert.Equal(t, "Your setup already looks good.", analysis.Content)
}

func TestAssistantAnalyzerErrorPropagates(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("http 500")}
	svc := &AssistantService{Analyzer: analyzer}

	_, err := svc.AnalyzeDNS(context.Background(), "records...")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}

func TestAssistantTaskPromptsPrependTemplates(t *testing.T) {
	analyzer := &stubAnalyzer{content: "ok"}
	svc := &AssistantService{Analyzer: analyzer}

	_, err := svc.Troubleshoot(context.Background(), "522 errors on /api")
	require.NoError(t, err)
	assert.Contains(t, analyzer.lastUser, "522 errors on /api")
	assert.Contains(t, analyzer.lastUser, "troubleshooting steps")
}

func TestAssistantApplyWritesAuditRecords(t *testing.T) {
	client := &fakeClient{}
	audit := &stubAudit{}
	svc := &AssistantService{
		Executor: &Executor{Client: client, Prompter: &scriptedPrompter{batchAnswer: true}},
		Audit:    audit,
	}

	plan := domain.ActionPlan{Actions: []domain.Action{
		action("cache_purge", "flush", domain.RiskLow, map[string]any{"type": "purge_all"}),
		action("firewall_rule", "bad params", domain.RiskLow, map[string]any{"type": "block_ip"}),
	}}

	report, err := svc.Apply(context.Background(), plan, "zone1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)

	require.Len(t, audit.saved, 2)
	assert.Equal(t, report.RunID, audit.saved[0].RunID)
	assert.Equal(t, "zone1", audit.saved[0].Zone)
	assert.Equal(t, string(domain.OutcomeSuccess), audit.saved[0].Status)
	assert.Equal(t, string(domain.OutcomeFailed), audit.saved[1].Status)
}

func TestAssistantApplyAuditFailureIsNotFatal(t *testing.T) {
	client := &fakeClient{}
	svc := &AssistantService{
		Executor: &Executor{Client: client, Prompter: &scriptedPrompter{batchAnswer: true}},
		Audit:    &stubAudit{err: errors.New("disk full")},
	}

	plan := domain.ActionPlan{Actions: []domain.Action{
		action("cache_purge", "flush", domain.RiskLow, map[string]any{"type": "purge_all"}),
	}}

	report, err := svc.Apply(context.Background(), plan, "zone1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

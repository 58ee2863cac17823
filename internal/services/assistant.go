package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

// AssistantService composes prompts, sends them through the Analyzer, and
// extracts an action plan from the reply. Applying a plan goes through the
// Executor and is recorded in the audit log.
type AssistantService struct {
	Analyzer ports.Analyzer
	Executor *Executor
	Audit    ports.AuditRepository
	Logger   ports.Logger
}

// Ask sends a free-form question.
func (s *AssistantService) Ask(ctx context.Context, question string) (domain.Analysis, error) {
	return s.chat(ctx, question)
}

// AskWithContext sends a question together with the zone's current
// configuration so the model can ground its answer.
func (s *AssistantService) AskWithContext(ctx context.Context, question, zoneContext string) (domain.Analysis, error) {
	full := fmt.Sprintf("Current zone configuration:\n%s\n\nUser question:\n%s", zoneContext, question)
	return s.chat(ctx, full)
}

// AnalyzeDNS reviews a serialized DNS record set.
func (s *AssistantService) AnalyzeDNS(ctx context.Context, dnsRecords string) (domain.Analysis, error) {
	return s.chat(ctx, dnsAnalysisPrompt+dnsRecords)
}

// AnalyzeSecurity reviews serialized security settings.
func (s *AssistantService) AnalyzeSecurity(ctx context.Context, securityConfig string) (domain.Analysis, error) {
	return s.chat(ctx, securityAnalysisPrompt+securityConfig)
}

// AnalyzePerformance reviews serialized performance settings.
func (s *AssistantService) AnalyzePerformance(ctx context.Context, perfConfig string) (domain.Analysis, error) {
	return s.chat(ctx, performanceAnalysisPrompt+perfConfig)
}

// Troubleshoot diagnoses a described problem.
func (s *AssistantService) Troubleshoot(ctx context.Context, issue string) (domain.Analysis, error) {
	return s.chat(ctx, troubleshootPrompt+issue)
}

// AutoConfig turns a requirement into a proposed change plan.
func (s *AssistantService) AutoConfig(ctx context.Context, requirement string) (domain.Analysis, error) {
	return s.chat(ctx, autoConfigPrompt+requirement)
}

func (s *AssistantService) chat(ctx context.Context, userMessage string) (domain.Analysis, error) {
	if s.Analyzer == nil {
		return domain.Analysis{}, errors.New("assistant: analyzer not configured")
	}
	result, err := s.Analyzer.Chat(ctx, systemPrompt, userMessage)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("analysis request: %w", err)
	}
	return domain.Analysis{
		Content:    result.Content,
		Plan:       Extract(result.Content),
		TokensUsed: result.TokensUsed,
	}, nil
}

// Apply executes a plan against a zone and persists the outcomes to the
// audit log. A failing audit write is logged, not fatal; the report is the
// source of truth for the caller.
func (s *AssistantService) Apply(ctx context.Context, plan domain.ActionPlan, zoneID string) (domain.ExecutionReport, error) {
	if s.Executor == nil {
		return domain.ExecutionReport{}, errors.New("assistant: executor not configured")
	}

	start := time.Now()
	report, err := s.Executor.Execute(ctx, plan.Actions, zoneID)
	s.recordAudit(report, time.Since(start))
	return report, err
}

func (s *AssistantService) recordAudit(report domain.ExecutionReport, elapsed time.Duration) {
	if s.Audit == nil || report.Total() == 0 {
		return
	}
	now := time.Now()
	records := make([]domain.AuditRecord, 0, report.Total())
	for _, outcome := range report.Outcomes {
		records = append(records, domain.AuditRecord{
			RunID:       report.RunID,
			Timestamp:   now,
			Zone:        report.ZoneID,
			Kind:        string(outcome.Action.Kind),
			Description: outcome.Action.Description,
			Risk:        string(outcome.Action.Risk),
			Status:      string(outcome.Status),
			Message:     outcome.Message,
			DurationMS:  elapsed.Milliseconds(),
		})
	}
	if err := s.Audit.Save(records); err != nil && s.Logger != nil {
		s.Logger.Warn("audit save failed", map[string]interface{}{
			"run_id": report.RunID,
			"error":  err.Error(),
		})
	}
}

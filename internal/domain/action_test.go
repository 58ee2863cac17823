package domain_test

import (
	"testing"

	"github.com/doeshing/cfai-go/internal/domain"
)

// TestParseActionKind tests wire-token to kind mapping
func TestParseActionKind(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  domain.ActionKind
	}{
		{name: "dns create", token: "dns_create", want: domain.KindDNSRecordCreate},
		{name: "dns update", token: "dns_update", want: domain.KindDNSRecordUpdate},
		{name: "dns delete", token: "dns_delete", want: domain.KindDNSRecordDelete},
		{name: "ssl set", token: "ssl_set", want: domain.KindTLSSettingChange},
		{name: "setting update", token: "setting_update", want: domain.KindResourceSettingChange},
		{name: "cache purge", token: "cache_purge", want: domain.KindCachePurge},
		{name: "firewall rule", token: "firewall_rule", want: domain.KindAccessRuleChange},
		{name: "hyphenated spelling", token: "dns-create", want: domain.KindDNSRecordCreate},
		{name: "mixed case", token: "DNS_Create", want: domain.KindDNSRecordCreate},
		{name: "unknown token", token: "page_rule_create", want: domain.KindUnsupported},
		{name: "empty token", token: "", want: domain.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ParseActionKind(tt.token); got != tt.want {
				t.Errorf("ParseActionKind(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// TestParseRiskLevel tests that unknown risk tokens never degrade to low
func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		token         string
		want          domain.RiskLevel
		wantEffective domain.RiskLevel
	}{
		{token: "low", want: domain.RiskLow, wantEffective: domain.RiskLow},
		{token: "medium", want: domain.RiskMedium, wantEffective: domain.RiskMedium},
		{token: "high", want: domain.RiskHigh, wantEffective: domain.RiskHigh},
		{token: "HIGH", want: domain.RiskHigh, wantEffective: domain.RiskHigh},
		{token: "severe", want: domain.RiskUnknown, wantEffective: domain.RiskMedium},
		{token: "", want: domain.RiskUnknown, wantEffective: domain.RiskMedium},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			got := domain.ParseRiskLevel(tt.token)
			if got != tt.want {
				t.Errorf("ParseRiskLevel(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if eff := got.Effective(); eff != tt.wantEffective {
				t.Errorf("Effective() = %v, want %v", eff, tt.wantEffective)
			}
			if got == domain.RiskUnknown && got.Effective() == domain.RiskLow {
				t.Error("unknown risk must never resolve to low")
			}
		})
	}
}

// TestExecutionReportCounters tests the aggregate bookkeeping
func TestExecutionReportCounters(t *testing.T) {
	var report domain.ExecutionReport

	report.Append(domain.Outcome{Status: domain.OutcomeSuccess, Message: "ok"})
	report.Append(domain.Outcome{Status: domain.OutcomeFailed, Message: "boom"})
	report.Append(domain.Outcome{Status: domain.OutcomeSkipped, Message: "declined"})
	report.Append(domain.Outcome{Status: domain.OutcomeSuccess, Message: "ok"})

	if report.Succeeded != 2 || report.Failed != 1 || report.Skipped != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", report.Succeeded, report.Failed, report.Skipped)
	}
	if report.Total() != 4 {
		t.Errorf("Total() = %d, want 4", report.Total())
	}
}

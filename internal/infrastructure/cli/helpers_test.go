package cli

import (
	"strings"
	"testing"

	"github.com/doeshing/cfai-go/internal/domain"
)

func TestIsZoneID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid id", "023e105f4ecef8ad9ca31a8372d0c353", true},
		{"domain name", "example.com", false},
		{"too short", "023e105f", false},
		{"uppercase hex rejected", "023E105F4ECEF8AD9CA31A8372D0C353", false},
		{"right length, non-hex", "zzze105f4ecef8ad9ca31a8372d0c353", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isZoneID(tt.value); got != tt.want {
				t.Errorf("isZoneID(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		secret string
		want   string
	}{
		{"", "(unset)"},
		{"short", "****"},
		{"abcdefghijklmnop", "abcd...mnop"},
	}
	for _, tt := range tests {
		if got := redact(tt.secret); got != tt.want {
			t.Errorf("redact(%q) = %q, want %q", tt.secret, got, tt.want)
		}
	}
}

func TestRenderReport(t *testing.T) {
	report := domain.ExecutionReport{RunID: "run-1", ZoneID: "zone-1"}
	report.Append(domain.Outcome{
		Action: domain.Action{Description: "enable Always Use HTTPS"},
		Status: domain.OutcomeSuccess,
	})
	report.Append(domain.Outcome{
		Action:  domain.Action{Description: "purge cache"},
		Status:  domain.OutcomeFailed,
		Message: "rate limited",
	})
	report.Append(domain.Outcome{
		Action:  domain.Action{Description: "block ip"},
		Status:  domain.OutcomeSkipped,
		Message: "aborted after earlier failure",
	})

	var sb strings.Builder
	RenderReport(&sb, report)
	out := sb.String()

	for _, want := range []string{
		"[success] enable Always Use HTTPS",
		"[failed] purge cache - rate limited",
		"[skipped] block ip",
		"1 succeeded, 1 failed, 1 skipped (run run-1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var sb strings.Builder
	RenderReport(&sb, domain.ExecutionReport{})
	if sb.Len() != 0 {
		t.Errorf("expected no output for empty report, got %q", sb.String())
	}
}

func TestDescribeDNSRecords(t *testing.T) {
	proxied := true
	records := []domain.DNSRecord{
		{Type: "A", Name: "www.example.com", Content: "203.0.113.7", TTL: 300, Proxied: &proxied},
		{Type: "TXT", Name: "example.com", Content: "v=spf1 -all", TTL: 1},
	}
	out := describeDNSRecords(records)
	if !strings.Contains(out, "A www.example.com -> 203.0.113.7 (ttl=300, proxied)") {
		t.Errorf("unexpected snapshot:\n%s", out)
	}
	if !strings.Contains(out, "TXT example.com -> v=spf1 -all (ttl=1)") {
		t.Errorf("unexpected snapshot:\n%s", out)
	}

	if got := describeDNSRecords(nil); got != "(no records)\n" {
		t.Errorf("describeDNSRecords(nil) = %q", got)
	}
}

func TestDescribeSettingsFilter(t *testing.T) {
	settings := []domain.ZoneSetting{
		{ID: "ssl", Value: "full"},
		{ID: "rocket_loader", Value: "off"},
	}
	out := describeSettings(settings, map[string]bool{"ssl": true})
	if !strings.Contains(out, "ssl: full") {
		t.Errorf("filtered snapshot missing ssl:\n%s", out)
	}
	if strings.Contains(out, "rocket_loader") {
		t.Errorf("filter leaked unrequested setting:\n%s", out)
	}
}

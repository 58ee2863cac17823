package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/doeshing/cfai-go/internal/domain"
)

// RenderAnalysis prints the assistant reply.
func RenderAnalysis(out io.Writer, analysis domain.Analysis) {
	fmt.Fprintln(out, strings.TrimSpace(analysis.Content))
	if analysis.TokensUsed > 0 {
		fmt.Fprintf(out, "\n(tokens used: %d)\n", analysis.TokensUsed)
	}
}

// RenderPlan lists the suggested actions without applying them.
func RenderPlan(out io.Writer, plan domain.ActionPlan) {
	fmt.Fprintln(out, "\nSuggested actions:")
	for i, action := range plan.Actions {
		fmt.Fprintf(out, "  %d. %s %s [%s, risk: %s]\n",
			i+1, action.Risk.Icon(), action.Description, action.Kind, action.Risk)
	}
	if plan.Explanation != "" {
		fmt.Fprintf(out, "\n%s\n", plan.Explanation)
	}
}

// RenderReport prints per-action outcomes followed by the aggregate line.
func RenderReport(out io.Writer, report domain.ExecutionReport) {
	if report.Total() == 0 {
		return
	}
	fmt.Fprintln(out, "\nExecution report:")
	for i, outcome := range report.Outcomes {
		line := fmt.Sprintf("  %d. [%s] %s", i+1, outcome.Status, outcome.Action.Description)
		if outcome.Message != "" {
			line += " - " + outcome.Message
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\n%d succeeded, %d failed, %d skipped (run %s)\n",
		report.Succeeded, report.Failed, report.Skipped, report.RunID)
}

// RenderZones prints a zone listing as a table.
func RenderZones(out io.Writer, zones []domain.Zone) {
	if len(zones) == 0 {
		fmt.Fprintln(out, "No zones found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tSTATUS")
	for _, zone := range zones {
		status := zone.Status
		if zone.Paused {
			status += " (paused)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", zone.Name, zone.ID, status)
	}
	w.Flush()
}

// RenderDNSRecords prints a DNS record listing as a table.
func RenderDNSRecords(out io.Writer, records []domain.DNSRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No DNS records found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\tCONTENT\tTTL\tPROXIED")
	for _, rec := range records {
		proxied := "-"
		if rec.Proxied != nil {
			proxied = fmt.Sprintf("%t", *rec.Proxied)
		}
		ttl := "auto"
		if rec.TTL > 1 {
			ttl = fmt.Sprintf("%d", rec.TTL)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.Type, rec.Name, rec.Content, ttl, proxied)
	}
	w.Flush()
}

// RenderZoneSettings prints zone settings as a table.
func RenderZoneSettings(out io.Writer, settings []domain.ZoneSetting) {
	if len(settings) == 0 {
		fmt.Fprintln(out, "No settings found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SETTING\tVALUE")
	for _, setting := range settings {
		fmt.Fprintf(w, "%s\t%v\n", setting.ID, setting.Value)
	}
	w.Flush()
}

// RenderAccessRules prints firewall IP access rules as a table.
func RenderAccessRules(out io.Writer, rules []domain.IPAccessRule) {
	if len(rules) == 0 {
		fmt.Fprintln(out, "No access rules found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTARGET\tNOTES")
	for _, rule := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.ID, rule.Mode, rule.Configuration.Value, rule.Notes)
	}
	w.Flush()
}

// RenderAuditRecords prints the execution history, newest first.
func RenderAuditRecords(out io.Writer, records []domain.AuditRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No audit entries.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tZONE\tACTION\tRISK\tSTATUS\tDETAIL")
	for _, rec := range records {
		detail := rec.Description
		if rec.Status == "failed" && rec.Message != "" {
			detail += " - " + rec.Message
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Timestamp.Local().Format("2006-01-02 15:04"), rec.Zone, rec.Kind, rec.Risk, rec.Status, detail)
	}
	w.Flush()
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
	"github.com/doeshing/cfai-go/internal/services"
)

// applyOptions are the flags shared by every command that can end in an
// execution run.
type applyOptions struct {
	zone   string
	yes    bool
	dryRun bool
}

func addApplyFlags(cmd *cobra.Command, opts *applyOptions) {
	cmd.Flags().StringVarP(&opts.zone, "zone", "z", "", "Zone name or ID (default from config)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Apply suggested actions without interactive confirmation")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show suggested actions without applying them")
}

func addZoneFlag(cmd *cobra.Command, zone *string) {
	cmd.Flags().StringVarP(zone, "zone", "z", "", "Zone name or ID (default from config)")
}

// prompterFor picks the confirmation gate: interactive prompts unless --yes
// or the auto_approve preference disables them.
func prompterFor(container *app.Container, yes bool) ports.ConfirmationPrompter {
	if yes || container.Config.Defaults.AutoApprove {
		return AutoApprover{}
	}
	return NewPrompter()
}

// resolveZoneID turns a zone flag (or the configured default) into a zone ID,
// looking names up via the API.
func resolveZoneID(ctx context.Context, container *app.Container, flagValue string) (string, error) {
	value := flagValue
	if value == "" {
		value = container.Config.Defaults.Zone
	}
	if value == "" {
		return "", errors.New("no zone specified: pass --zone or set defaults.zone in the config")
	}
	if isZoneID(value) {
		return value, nil
	}
	client, err := container.ResourceClient()
	if err != nil {
		return "", err
	}
	return client.FindZoneID(ctx, value)
}

// isZoneID reports whether value looks like a Cloudflare zone ID (32 hex chars).
func isZoneID(value string) bool {
	if len(value) != 32 {
		return false
	}
	for _, r := range value {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// finishAnalysis renders the reply and, when the reply carries actions, runs
// the apply workflow (or just lists the plan under --dry-run).
func finishAnalysis(cmd *cobra.Command, container *app.Container, assistant *services.AssistantService, analysis domain.Analysis, opts applyOptions) error {
	out := cmd.OutOrStdout()
	RenderAnalysis(out, analysis)

	if analysis.Plan.Empty() {
		return nil
	}
	if opts.dryRun {
		RenderPlan(out, analysis.Plan)
		fmt.Fprintln(out, "\nDry run: no actions applied.")
		return nil
	}

	zoneID, err := resolveZoneID(cmd.Context(), container, opts.zone)
	if err != nil {
		return err
	}
	report, err := assistant.Apply(cmd.Context(), analysis.Plan, zoneID)
	RenderReport(out, report)
	return err
}

// describeSettings serializes zone settings for inclusion in an analysis
// prompt, restricted to the given setting IDs (all when nil).
func describeSettings(settings []domain.ZoneSetting, only map[string]bool) string {
	var sb strings.Builder
	for _, setting := range settings {
		if only != nil && !only[setting.ID] {
			continue
		}
		fmt.Fprintf(&sb, "%s: %v\n", setting.ID, setting.Value)
	}
	return sb.String()
}

// describeDNSRecords serializes DNS records for inclusion in an analysis prompt.
func describeDNSRecords(records []domain.DNSRecord) string {
	var sb strings.Builder
	for _, rec := range records {
		proxied := ""
		if rec.Proxied != nil && *rec.Proxied {
			proxied = ", proxied"
		}
		fmt.Fprintf(&sb, "%s %s -> %s (ttl=%d%s)\n", rec.Type, rec.Name, rec.Content, rec.TTL, proxied)
	}
	if sb.Len() == 0 {
		return "(no records)\n"
	}
	return sb.String()
}

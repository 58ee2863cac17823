package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/services"
)

// Settings included in the security and performance analysis snapshots. The
// Cloudflare settings endpoint returns everything; the prompt only needs the
// relevant slice.
var (
	securitySettingIDs = map[string]bool{
		"ssl":                      true,
		"min_tls_version":          true,
		"always_use_https":         true,
		"automatic_https_rewrites": true,
		"opportunistic_encryption": true,
		"security_level":           true,
		"browser_check":            true,
		"challenge_ttl":            true,
		"waf":                      true,
	}
	performanceSettingIDs = map[string]bool{
		"cache_level":       true,
		"browser_cache_ttl": true,
		"always_online":     true,
		"brotli":            true,
		"early_hints":       true,
		"http2":             true,
		"http3":             true,
		"0rtt":              true,
		"minify":            true,
		"rocket_loader":     true,
	}
)

// newAnalyzeCommand creates the analyze command group: dns, security and
// performance reviews of the zone's current state.
func newAnalyzeCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the current zone configuration",
	}
	cmd.AddCommand(newAnalyzeDNSCommand(container))
	cmd.AddCommand(newAnalyzeSecurityCommand(container))
	cmd.AddCommand(newAnalyzePerformanceCommand(container))
	return cmd
}

func newAnalyzeDNSCommand(container *app.Container) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Review the zone's DNS records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZoneAnalysis(cmd, container, opts,
				func(ctx context.Context, zoneID string) (string, error) {
					client, err := container.ResourceClient()
					if err != nil {
						return "", err
					}
					records, err := client.ListDNSRecords(ctx, zoneID, dnsListAll())
					if err != nil {
						return "", fmt.Errorf("list dns records: %w", err)
					}
					return describeDNSRecords(records), nil
				},
				func(assistant *services.AssistantService, ctx context.Context, snapshot string) (domain.Analysis, error) {
					return assistant.AnalyzeDNS(ctx, snapshot)
				})
		},
	}
	addApplyFlags(cmd, &opts)
	return cmd
}

func newAnalyzeSecurityCommand(container *app.Container) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Review the zone's security settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZoneAnalysis(cmd, container, opts,
				settingsSnapshot(container, securitySettingIDs),
				func(assistant *services.AssistantService, ctx context.Context, snapshot string) (domain.Analysis, error) {
					return assistant.AnalyzeSecurity(ctx, snapshot)
				})
		},
	}
	addApplyFlags(cmd, &opts)
	return cmd
}

func newAnalyzePerformanceCommand(container *app.Container) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Review the zone's performance settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZoneAnalysis(cmd, container, opts,
				settingsSnapshot(container, performanceSettingIDs),
				func(assistant *services.AssistantService, ctx context.Context, snapshot string) (domain.Analysis, error) {
					return assistant.AnalyzePerformance(ctx, snapshot)
				})
		},
	}
	addApplyFlags(cmd, &opts)
	return cmd
}

// runZoneAnalysis resolves the zone, collects a state snapshot, sends it for
// analysis and runs the apply workflow on the reply.
func runZoneAnalysis(
	cmd *cobra.Command,
	container *app.Container,
	opts applyOptions,
	collect func(ctx context.Context, zoneID string) (string, error),
	analyze func(assistant *services.AssistantService, ctx context.Context, snapshot string) (domain.Analysis, error),
) error {
	ctx := cmd.Context()
	zoneID, err := resolveZoneID(ctx, container, opts.zone)
	if err != nil {
		return err
	}
	snapshot, err := collect(ctx, zoneID)
	if err != nil {
		return err
	}
	assistant, err := container.Assistant(prompterFor(container, opts.yes))
	if err != nil {
		return err
	}
	analysis, err := analyze(assistant, ctx, snapshot)
	if err != nil {
		return err
	}
	return finishAnalysis(cmd, container, assistant, analysis, opts)
}

func settingsSnapshot(container *app.Container, only map[string]bool) func(ctx context.Context, zoneID string) (string, error) {
	return func(ctx context.Context, zoneID string) (string, error) {
		client, err := container.ResourceClient()
		if err != nil {
			return "", err
		}
		settings, err := client.GetZoneSettings(ctx, zoneID)
		if err != nil {
			return "", fmt.Errorf("get zone settings: %w", err)
		}
		return describeSettings(settings, only), nil
	}
}

func dnsListAll() domain.DNSListParams {
	return domain.DNSListParams{}
}

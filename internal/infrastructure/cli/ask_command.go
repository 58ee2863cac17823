package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newAskCommand creates the free-form question command. When the reply
// carries suggested actions they go through the confirmation workflow.
func newAskCommand(container *app.Container) *cobra.Command {
	var (
		opts        applyOptions
		withContext bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the assistant about your Cloudflare setup",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			question := strings.Join(args, " ")

			assistant, err := container.Assistant(prompterFor(container, opts.yes))
			if err != nil {
				return err
			}

			if withContext {
				zoneContext, err := collectZoneContext(cmd, container, opts.zone)
				if err != nil {
					return err
				}
				analysis, err := assistant.AskWithContext(ctx, question, zoneContext)
				if err != nil {
					return err
				}
				return finishAnalysis(cmd, container, assistant, analysis, opts)
			}

			analysis, err := assistant.Ask(ctx, question)
			if err != nil {
				return err
			}
			return finishAnalysis(cmd, container, assistant, analysis, opts)
		},
	}

	addApplyFlags(cmd, &opts)
	cmd.Flags().BoolVar(&withContext, "with-context", false, "Include the zone's current configuration in the question")
	return cmd
}

// collectZoneContext gathers the zone's DNS records and settings into a text
// snapshot for the model.
func collectZoneContext(cmd *cobra.Command, container *app.Container, zoneFlag string) (string, error) {
	ctx := cmd.Context()
	zoneID, err := resolveZoneID(ctx, container, zoneFlag)
	if err != nil {
		return "", err
	}
	client, err := container.ResourceClient()
	if err != nil {
		return "", err
	}

	records, err := client.ListDNSRecords(ctx, zoneID, dnsListAll())
	if err != nil {
		return "", fmt.Errorf("list dns records: %w", err)
	}
	settings, err := client.GetZoneSettings(ctx, zoneID)
	if err != nil {
		return "", fmt.Errorf("get zone settings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("DNS records:\n")
	sb.WriteString(describeDNSRecords(records))
	sb.WriteString("\nZone settings:\n")
	sb.WriteString(describeSettings(settings, nil))
	return sb.String(), nil
}

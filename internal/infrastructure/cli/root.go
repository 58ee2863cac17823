// Package cli wires the cobra command tree over the application container.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	askCmd := newAskCommand(container)

	root := &cobra.Command{
		Use:   "cfai [question]",
		Short: "cfai - AI-assisted Cloudflare management",
		Long:  "cfai analyzes and manages Cloudflare zones; AI-suggested changes go through risk-gated confirmation before anything is applied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			askCmd.SetArgs(args)
			return askCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(askCmd)
	root.AddCommand(newAnalyzeCommand(container))
	root.AddCommand(newTroubleshootCommand(container))
	root.AddCommand(newAutoConfigCommand(container))
	root.AddCommand(newDNSCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newFirewallCommand(container))
	root.AddCommand(newTLSCommand(container))
	root.AddCommand(newZoneCommand(container))
	root.AddCommand(newAuditCommand(container))
	root.AddCommand(newConfigCommand(container))
	return root, nil
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newTroubleshootCommand creates the troubleshoot command: describe a
// problem, get a diagnosis and (optionally) fixes to apply.
func newTroubleshootCommand(container *app.Container) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "troubleshoot [problem description]",
		Short: "Diagnose a problem with your zone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := container.Assistant(prompterFor(container, opts.yes))
			if err != nil {
				return err
			}
			analysis, err := assistant.Troubleshoot(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return finishAnalysis(cmd, container, assistant, analysis, opts)
		},
	}
	addApplyFlags(cmd, &opts)
	return cmd
}

// newAutoConfigCommand creates the autoconfig command: turn a requirement
// ("make my blog fast and secure") into a reviewed change plan.
func newAutoConfigCommand(container *app.Container) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "autoconfig [requirement]",
		Short: "Propose a configuration plan from a requirement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := container.Assistant(prompterFor(container, opts.yes))
			if err != nil {
				return err
			}
			analysis, err := assistant.AutoConfig(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return finishAnalysis(cmd, container, assistant, analysis, opts)
		},
	}
	addApplyFlags(cmd, &opts)
	return cmd
}

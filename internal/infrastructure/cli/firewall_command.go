package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newFirewallCommand creates the firewall command group.
func newFirewallCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firewall",
		Short: "Manage firewall access rules and security level",
	}
	cmd.AddCommand(newFirewallRulesCommand(container))
	cmd.AddCommand(newFirewallBlockCommand(container))
	cmd.AddCommand(newFirewallAllowCommand(container))
	cmd.AddCommand(newFirewallLevelCommand(container))
	return cmd
}

func newFirewallRulesCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List IP access rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			zoneID, err := resolveZoneID(ctx, container, zone)
			if err != nil {
				return err
			}
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			rules, err := client.ListIPAccessRules(ctx, zoneID)
			if err != nil {
				return err
			}
			RenderAccessRules(cmd.OutOrStdout(), rules)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

func newFirewallBlockCommand(container *app.Container) *cobra.Command {
	var (
		zone string
		note string
	)
	cmd := &cobra.Command{
		Use:   "block <ip>",
		Short: "Block an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			zoneID, err := resolveZoneID(ctx, container, zone)
			if err != nil {
				return err
			}
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			rule, err := client.BlockIP(ctx, zoneID, args[0], note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blocked %s (rule %s)\n", args[0], rule.ID)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	cmd.Flags().StringVar(&note, "note", "", "Note attached to the rule")
	return cmd
}

func newFirewallAllowCommand(container *app.Container) *cobra.Command {
	var (
		zone string
		note string
	)
	cmd := &cobra.Command{
		Use:   "allow <ip>",
		Short: "Whitelist an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			zoneID, err := resolveZoneID(ctx, container, zone)
			if err != nil {
				return err
			}
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			rule, err := client.AllowIP(ctx, zoneID, args[0], note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Whitelisted %s (rule %s)\n", args[0], rule.ID)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	cmd.Flags().StringVar(&note, "note", "", "Note attached to the rule")
	return cmd
}

func newFirewallLevelCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "level <off|essentially_off|low|medium|high|under_attack>",
		Short: "Set the zone security level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			zoneID, err := resolveZoneID(ctx, container, zone)
			if err != nil {
				return err
			}
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			if err := client.SetSecurityLevel(ctx, zoneID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Security level set to %s\n", args[0])
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

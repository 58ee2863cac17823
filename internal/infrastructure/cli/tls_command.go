package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newTLSCommand creates the tls command group.
func newTLSCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tls",
		Short: "Manage TLS/SSL settings",
	}
	cmd.AddCommand(newTLSModeCommand(container))
	cmd.AddCommand(newTLSMinVersionCommand(container))
	cmd.AddCommand(newTLSAlwaysHTTPSCommand(container))
	return cmd
}

func newTLSModeCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "mode <off|flexible|full|strict>",
		Short: "Set the SSL/TLS encryption mode",
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
			if err := client.SetSSLMode(ctx, zoneID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SSL mode set to %s\n", args[0])
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

func newTLSMinVersionCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "min-version <1.0|1.1|1.2|1.3>",
		Short: "Set the minimum TLS version",
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
			if err := client.SetMinTLSVersion(ctx, zoneID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Minimum TLS version set to %s\n", args[0])
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

func newTLSAlwaysHTTPSCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "always-https <on|off>",
		Short: "Toggle Always Use HTTPS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			zoneID, err := resolveZoneID(ctx, container, zone)
			if err != nil {
				return err
			}
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			if err := client.SetAlwaysHTTPS(ctx, zoneID, enable); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Always Use HTTPS: %s\n", args[0])
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

func parseOnOff(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

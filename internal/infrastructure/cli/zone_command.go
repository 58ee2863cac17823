package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newZoneCommand creates the zone command group.
func newZoneCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Inspect zones",
	}
	cmd.AddCommand(newZoneListCommand(container))
	cmd.AddCommand(newZoneSettingsCommand(container))
	return cmd
}

func newZoneListCommand(container *app.Container) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zones on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := container.ResourceClient()
			if err != nil {
				return err
			}
			zones, err := client.ListZones(cmd.Context(), name)
			if err != nil {
				return err
			}
			RenderZones(cmd.OutOrStdout(), zones)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Filter by zone name")
	return cmd
}

func newZoneSettingsCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the zone's settings",
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
			settings, err := client.GetZoneSettings(ctx, zoneID)
			if err != nil {
				return err
			}
			RenderZoneSettings(cmd.OutOrStdout(), settings)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

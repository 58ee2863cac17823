package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
	"github.com/doeshing/cfai-go/internal/domain"
)

// newDNSCommand creates the dns command group for direct record management,
// no AI involved.
func newDNSCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records directly",
	}
	cmd.AddCommand(newDNSListCommand(container))
	cmd.AddCommand(newDNSCreateCommand(container))
	cmd.AddCommand(newDNSDeleteCommand(container))
	return cmd
}

func newDNSListCommand(container *app.Container) *cobra.Command {
	var (
		zone       string
		recordType string
		name       string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DNS records",
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
			records, err := client.ListDNSRecords(ctx, zoneID, domain.DNSListParams{Type: recordType, Name: name})
			if err != nil {
				return err
			}
			RenderDNSRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	cmd.Flags().StringVarP(&recordType, "type", "t", "", "Filter by record type (A, AAAA, CNAME, ...)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Filter by record name")
	return cmd
}

func newDNSCreateCommand(container *app.Container) *cobra.Command {
	var (
		zone    string
		ttl     int
		proxied bool
		comment string
	)
	cmd := &cobra.Command{
		Use:   "create <type> <name> <content>",
		Short: "Create a DNS record",
		Args:  cobra.ExactArgs(3),
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
			req := domain.DNSRecordRequest{
				Type:    args[0],
				Name:    args[1],
				Content: args[2],
				Comment: comment,
			}
			if ttl > 0 {
				req.TTL = &ttl
			}
			if cmd.Flags().Changed("proxied") {
				req.Proxied = &proxied
			}
			record, err := client.CreateDNSRecord(ctx, zoneID, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s record %s (%s)\n", record.Type, record.Name, record.ID)
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	cmd.Flags().IntVar(&ttl, "ttl", 0, "Record TTL in seconds (default: automatic)")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "Proxy the record through Cloudflare")
	cmd.Flags().StringVar(&comment, "comment", "", "Record comment")
	return cmd
}

func newDNSDeleteCommand(container *app.Container) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a DNS record by ID",
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
			if err := client.DeleteDNSRecord(ctx, zoneID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", args[0])
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	return cmd
}

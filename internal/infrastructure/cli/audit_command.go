package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newAuditCommand creates the audit command group over the execution history.
func newAuditCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the execution history",
	}
	cmd.AddCommand(newAuditListCommand(container))
	cmd.AddCommand(newAuditClearCommand(container))
	return cmd
}

func newAuditListCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past action outcomes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Audit == nil {
				return errors.New("audit log unavailable")
			}
			records, err := container.Audit.Records(limit, search)
			if err != nil {
				return err
			}
			RenderAuditRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter entries by zone, action or description")
	return cmd
}

func newAuditClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the execution history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Audit == nil {
				return errors.New("audit log unavailable")
			}
			if err := container.Audit.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Audit log cleared.")
			return nil
		},
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
)

// newCacheCommand creates the cache command group.
func newCacheCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the zone's edge cache",
	}
	cmd.AddCommand(newCachePurgeCommand(container))
	return cmd
}

func newCachePurgeCommand(container *app.Container) *cobra.Command {
	var (
		zone     string
		purgeAll bool
		urls     []string
		tags     []string
		hosts    []string
	)
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge cached content",
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

			switch {
			case purgeAll:
				err = client.PurgeAllCache(ctx, zoneID)
			case len(urls) > 0:
				err = client.PurgeCacheByURLs(ctx, zoneID, urls)
			case len(tags) > 0:
				err = client.PurgeCacheByTags(ctx, zoneID, tags)
			case len(hosts) > 0:
				err = client.PurgeCacheByHosts(ctx, zoneID, hosts)
			default:
				return errors.New("nothing to purge: pass --all, --url, --tag or --host")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache purge submitted.")
			return nil
		},
	}
	addZoneFlag(cmd, &zone)
	cmd.Flags().BoolVar(&purgeAll, "all", false, "Purge everything")
	cmd.Flags().StringSliceVar(&urls, "url", nil, "Purge specific URLs (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Purge by cache tag (repeatable)")
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "Purge by hostname (repeatable)")
	return cmd
}

package cloudflare

import (
	"context"
	"fmt"
)

type purgeRequest struct {
	PurgeEverything *bool    `json:"purge_everything,omitempty"`
	Files           []string `json:"files,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Hosts           []string `json:"hosts,omitempty"`
}

func (c *Client) purge(ctx context.Context, zoneID string, body purgeRequest) error {
	return c.post(ctx, fmt.Sprintf("/zones/%s/purge_cache", zoneID), body, nil)
}

// PurgeAllCache drops the entire cache for the zone.
func (c *Client) PurgeAllCache(ctx context.Context, zoneID string) error {
	everything := true
	return c.purge(ctx, zoneID, purgeRequest{PurgeEverything: &everything})
}

// PurgeCacheByURLs purges specific URLs.
func (c *Client) PurgeCacheByURLs(ctx context.Context, zoneID string, urls []string) error {
	return c.purge(ctx, zoneID, purgeRequest{Files: urls})
}

// PurgeCacheByTags purges by cache tag.
func (c *Client) PurgeCacheByTags(ctx context.Context, zoneID string, tags []string) error {
	return c.purge(ctx, zoneID, purgeRequest{Tags: tags})
}

// PurgeCacheByHosts purges by hostname.
func (c *Client) PurgeCacheByHosts(ctx context.Context, zoneID string, hosts []string) error {
	return c.purge(ctx, zoneID, purgeRequest{Hosts: hosts})
}

package cloudflare

import (
	"context"
	"fmt"
	"net/url"

	"github.com/doeshing/cfai-go/internal/domain"
)

// ListZones returns zones on the account, optionally filtered by name.
func (c *Client) ListZones(ctx context.Context, name string) ([]domain.Zone, error) {
	values := url.Values{}
	if name != "" {
		values.Set("name", name)
	}
	var zones []domain.Zone
	if err := c.get(ctx, "/zones"+queryString(values), &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZone fetches one zone by id.
func (c *Client) GetZone(ctx context.Context, zoneID string) (domain.Zone, error) {
	var zone domain.Zone
	err := c.get(ctx, fmt.Sprintf("/zones/%s", zoneID), &zone)
	return zone, err
}

// FindZoneID resolves a zone name (domain) to its id.
func (c *Client) FindZoneID(ctx context.Context, name string) (string, error) {
	zones, err := c.ListZones(ctx, name)
	if err != nil {
		return "", err
	}
	if len(zones) == 0 {
		return "", fmt.Errorf("zone not found: %s", name)
	}
	return zones[0].ID, nil
}

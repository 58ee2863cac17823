package cloudflare

import (
	"context"
	"fmt"
	"net/url"

	"github.com/doeshing/cfai-go/internal/domain"
)

// ListDNSRecords returns the zone's DNS records, optionally filtered.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string, params domain.DNSListParams) ([]domain.DNSRecord, error) {
	values := url.Values{}
	if params.Type != "" {
		values.Set("type", params.Type)
	}
	if params.Name != "" {
		values.Set("name", params.Name)
	}

	var records []domain.DNSRecord
	path := fmt.Sprintf("/zones/%s/dns_records%s", zoneID, queryString(values))
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetDNSRecord fetches one record by id.
func (c *Client) GetDNSRecord(ctx context.Context, zoneID, recordID string) (domain.DNSRecord, error) {
	var record domain.DNSRecord
	err := c.get(ctx, fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID), &record)
	return record, err
}

// CreateDNSRecord creates a record and returns it with the assigned id.
func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, req domain.DNSRecordRequest) (domain.DNSRecord, error) {
	var record domain.DNSRecord
	err := c.post(ctx, fmt.Sprintf("/zones/%s/dns_records", zoneID), req, &record)
	return record, err
}

// UpdateDNSRecord fully replaces a record.
func (c *Client) UpdateDNSRecord(ctx context.Context, zoneID, recordID string, req domain.DNSRecordRequest) (domain.DNSRecord, error) {
	var record domain.DNSRecord
	err := c.put(ctx, fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID), req, &record)
	return record, err
}

// DeleteDNSRecord removes a record.
func (c *Client) DeleteDNSRecord(ctx context.Context, zoneID, recordID string) error {
	return c.delete(ctx, fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID))
}

package cloudflare

import (
	"context"
	"fmt"

	"github.com/doeshing/cfai-go/internal/domain"
)

// ListIPAccessRules returns the zone's IP access rules.
func (c *Client) ListIPAccessRules(ctx context.Context, zoneID string) ([]domain.IPAccessRule, error) {
	var rules []domain.IPAccessRule
	if err := c.get(ctx, fmt.Sprintf("/zones/%s/firewall/access_rules/rules", zoneID), &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (c *Client) createIPAccessRule(ctx context.Context, zoneID string, req domain.CreateIPAccessRuleRequest) (domain.IPAccessRule, error) {
	var rule domain.IPAccessRule
	err := c.post(ctx, fmt.Sprintf("/zones/%s/firewall/access_rules/rules", zoneID), req, &rule)
	return rule, err
}

// DeleteIPAccessRule removes an access rule.
func (c *Client) DeleteIPAccessRule(ctx context.Context, zoneID, ruleID string) error {
	return c.delete(ctx, fmt.Sprintf("/zones/%s/firewall/access_rules/rules/%s", zoneID, ruleID))
}

// BlockIP creates a block rule for the given IP.
func (c *Client) BlockIP(ctx context.Context, zoneID, ip, note string) (domain.IPAccessRule, error) {
	return c.createIPAccessRule(ctx, zoneID, domain.CreateIPAccessRuleRequest{
		Mode:          "block",
		Configuration: domain.IPAccessRuleTarget{Target: "ip", Value: ip},
		Notes:         note,
	})
}

// AllowIP creates a whitelist rule for the given IP.
func (c *Client) AllowIP(ctx context.Context, zoneID, ip, note string) (domain.IPAccessRule, error) {
	return c.createIPAccessRule(ctx, zoneID, domain.CreateIPAccessRuleRequest{
		Mode:          "whitelist",
		Configuration: domain.IPAccessRuleTarget{Target: "ip", Value: ip},
		Notes:         note,
	})
}

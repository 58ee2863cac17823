package cloudflare

import (
	"context"
	"fmt"

	"github.com/doeshing/cfai-go/internal/domain"
)

// updateSetting patches a single zone setting to the given value.
func (c *Client) updateSetting(ctx context.Context, zoneID, settingID string, value any) error {
	body := map[string]any{"value": value}
	return c.patch(ctx, fmt.Sprintf("/zones/%s/settings/%s", zoneID, settingID), body, nil)
}

func onOff(enable bool) string {
	if enable {
		return "on"
	}
	return "off"
}

// SetSSLMode sets the SSL/TLS encryption mode (off/flexible/full/strict).
func (c *Client) SetSSLMode(ctx context.Context, zoneID, mode string) error {
	return c.updateSetting(ctx, zoneID, "ssl", mode)
}

// SetAlwaysHTTPS toggles Always Use HTTPS.
func (c *Client) SetAlwaysHTTPS(ctx context.Context, zoneID string, enable bool) error {
	return c.updateSetting(ctx, zoneID, "always_use_https", onOff(enable))
}

// SetMinTLSVersion sets the minimum accepted TLS version.
func (c *Client) SetMinTLSVersion(ctx context.Context, zoneID, version string) error {
	return c.updateSetting(ctx, zoneID, "min_tls_version", version)
}

// SetOpportunisticEncryption toggles Opportunistic Encryption.
func (c *Client) SetOpportunisticEncryption(ctx context.Context, zoneID string, enable bool) error {
	return c.updateSetting(ctx, zoneID, "opportunistic_encryption", onOff(enable))
}

// SetAutomaticHTTPSRewrites toggles Automatic HTTPS Rewrites.
func (c *Client) SetAutomaticHTTPSRewrites(ctx context.Context, zoneID string, enable bool) error {
	return c.updateSetting(ctx, zoneID, "automatic_https_rewrites", onOff(enable))
}

// UpdateZoneSetting is the generic passthrough for any zone setting id.
func (c *Client) UpdateZoneSetting(ctx context.Context, zoneID, settingID string, value any) error {
	return c.updateSetting(ctx, zoneID, settingID, value)
}

// SetSecurityLevel sets the zone security level.
func (c *Client) SetSecurityLevel(ctx context.Context, zoneID, level string) error {
	return c.updateSetting(ctx, zoneID, "security_level", level)
}

// SetUnderAttackMode toggles I'm Under Attack mode. Disabling drops the
// security level back to medium.
func (c *Client) SetUnderAttackMode(ctx context.Context, zoneID string, enable bool) error {
	level := "medium"
	if enable {
		level = "under_attack"
	}
	return c.updateSetting(ctx, zoneID, "security_level", level)
}

// SetBrowserCheck toggles Browser Integrity Check.
func (c *Client) SetBrowserCheck(ctx context.Context, zoneID string, enable bool) error {
	return c.updateSetting(ctx, zoneID, "browser_check", onOff(enable))
}

// GetZoneSettings returns all settings for a zone.
func (c *Client) GetZoneSettings(ctx context.Context, zoneID string) ([]domain.ZoneSetting, error) {
	var settings []domain.ZoneSetting
	if err := c.get(ctx, fmt.Sprintf("/zones/%s/settings", zoneID), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetZoneSetting returns one setting by id.
func (c *Client) GetZoneSetting(ctx context.Context, zoneID, settingID string) (domain.ZoneSetting, error) {
	var setting domain.ZoneSetting
	err := c.get(ctx, fmt.Sprintf("/zones/%s/settings/%s", zoneID, settingID), &setting)
	return setting, err
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

// Executor runs an extracted action plan against a zone under the risk-gated
// confirmation protocol: one batch confirmation up front, a per-action
// confirmation for high-risk actions, and an explicit continue prompt after
// any failure with actions remaining.
//
// A decline skips the action and the run moves on; only a failure pauses the
// run for the continue prompt. An error from the prompter itself (for
// example, a closed input stream) aborts the call and is returned alongside
// the partial report, never silently treated as a decline.
type Executor struct {
	Client   ports.ResourceClient
	Prompter ports.ConfirmationPrompter
	Logger   ports.Logger
}

// Execute dispatches actions one at a time, strictly in order, and returns
// one outcome per action in the same order. The plan is read-only to the
// executor; the report is freshly owned by the caller.
func (e *Executor) Execute(ctx context.Context, actions []domain.Action, zoneID string) (domain.ExecutionReport, error) {
	report := domain.ExecutionReport{
		RunID:  uuid.NewString(),
		ZoneID: zoneID,
	}
	if len(actions) == 0 {
		return report, nil
	}

	approved, err := e.Prompter.ConfirmBatch(actions)
	if err != nil {
		return report, fmt.Errorf("batch confirmation: %w", err)
	}
	if !approved {
		for _, action := range actions {
			report.Append(domain.Outcome{
				Action:  action,
				Status:  domain.OutcomeSkipped,
				Message: "declined at batch confirmation",
			})
		}
		return report, nil
	}

	for i, action := range actions {
		if action.Risk == domain.RiskHigh {
			ok, err := e.Prompter.ConfirmHighRisk(action)
			if err != nil {
				return report, fmt.Errorf("high-risk confirmation: %w", err)
			}
			if !ok {
				report.Append(domain.Outcome{
					Action:  action,
					Status:  domain.OutcomeSkipped,
					Message: "high-risk action declined",
				})
				continue
			}
		}

		msg, err := e.dispatch(ctx, zoneID, action)
		if err == nil {
			report.Append(domain.Outcome{
				Action:  action,
				Status:  domain.OutcomeSuccess,
				Message: msg,
			})
			continue
		}

		if e.Logger != nil {
			e.Logger.Warn("action failed", map[string]interface{}{
				"run_id": report.RunID,
				"index":  i,
				"kind":   string(action.Kind),
				"error":  err.Error(),
			})
		}
		report.Append(domain.Outcome{
			Action:  action,
			Status:  domain.OutcomeFailed,
			Message: err.Error(),
		})

		if i+1 >= len(actions) {
			continue
		}
		cont, cerr := e.Prompter.ConfirmContinue(i, action)
		if cerr != nil {
			return report, fmt.Errorf("continue confirmation: %w", cerr)
		}
		if !cont {
			for _, remaining := range actions[i+1:] {
				report.Append(domain.Outcome{
					Action:  remaining,
					Status:  domain.OutcomeSkipped,
					Message: "aborted after earlier failure",
				})
			}
			return report, nil
		}
	}

	return report, nil
}

// dispatch maps one action to exactly one resource client operation.
// Parameter validation happens here, lazily: a missing or malformed key is a
// failed outcome, never a panic, and never a remote call.
func (e *Executor) dispatch(ctx context.Context, zoneID string, action domain.Action) (string, error) {
	switch action.Kind {
	case domain.KindTLSSettingChange:
		return e.executeSSL(ctx, zoneID, action.Params)
	case domain.KindResourceSettingChange:
		return e.executeSettingUpdate(ctx, zoneID, action.Params)
	case domain.KindDNSRecordCreate:
		return e.executeDNSCreate(ctx, zoneID, action.Params)
	case domain.KindDNSRecordUpdate:
		return e.executeDNSUpdate(ctx, zoneID, action.Params)
	case domain.KindDNSRecordDelete:
		return e.executeDNSDelete(ctx, zoneID, action.Params)
	case domain.KindCachePurge:
		return e.executeCachePurge(ctx, zoneID, action.Params)
	case domain.KindAccessRuleChange:
		return e.executeFirewallRule(ctx, zoneID, action.Params)
	default:
		return "", fmt.Errorf("unsupported action type: %q", action.RawType)
	}
}

func (e *Executor) executeSSL(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	setting, err := stringParam(params, "setting")
	if err != nil {
		return "", fmt.Errorf("ssl_set: %w", err)
	}

	switch canonicalSSLSetting(setting) {
	case "ssl_mode":
		value, err := stringParam(params, "value")
		if err != nil {
			return "", fmt.Errorf("ssl_set: %w", err)
		}
		if err := e.Client.SetSSLMode(ctx, zoneID, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("SSL mode set to %s", value), nil
	case "always_https":
		enable, err := boolParam(params, "enable")
		if err != nil {
			return "", fmt.Errorf("ssl_set: %w", err)
		}
		if err := e.Client.SetAlwaysHTTPS(ctx, zoneID, enable); err != nil {
			return "", err
		}
		return fmt.Sprintf("Always Use HTTPS %s", enabledWord(enable)), nil
	case "min_tls_version":
		value, err := stringParam(params, "value")
		if err != nil {
			return "", fmt.Errorf("ssl_set: %w", err)
		}
		if err := e.Client.SetMinTLSVersion(ctx, zoneID, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("minimum TLS version set to %s", value), nil
	case "opportunistic_encryption":
		enable, err := boolParam(params, "enable")
		if err != nil {
			return "", fmt.Errorf("ssl_set: %w", err)
		}
		if err := e.Client.SetOpportunisticEncryption(ctx, zoneID, enable); err != nil {
			return "", err
		}
		return fmt.Sprintf("Opportunistic Encryption %s", enabledWord(enable)), nil
	case "automatic_https_rewrites":
		enable, err := boolParam(params, "enable")
		if err != nil {
			return "", fmt.Errorf("ssl_set: %w", err)
		}
		if err := e.Client.SetAutomaticHTTPSRewrites(ctx, zoneID, enable); err != nil {
			return "", err
		}
		return fmt.Sprintf("Automatic HTTPS Rewrites %s", enabledWord(enable)), nil
	default:
		return "", fmt.Errorf("ssl_set: unknown setting %q", setting)
	}
}

func (e *Executor) executeSettingUpdate(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	settingID, err := stringParam(params, "setting_id")
	if err != nil {
		return "", fmt.Errorf("setting_update: %w", err)
	}
	value, ok := params["value"]
	if !ok {
		return "", fmt.Errorf("setting_update: missing required parameter %q", "value")
	}
	if err := e.Client.UpdateZoneSetting(ctx, zoneID, settingID, value); err != nil {
		return "", err
	}
	return fmt.Sprintf("setting %s updated to %v", settingID, value), nil
}

func (e *Executor) executeDNSCreate(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	req, err := dnsRequestFromParams(params)
	if err != nil {
		return "", fmt.Errorf("dns_create: %w", err)
	}
	record, err := e.Client.CreateDNSRecord(ctx, zoneID, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DNS record created: %s %s -> %s (ID: %s)", req.Type, req.Name, req.Content, record.ID), nil
}

func (e *Executor) executeDNSUpdate(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	recordID, err := stringParam(params, "record_id")
	if err != nil {
		return "", fmt.Errorf("dns_update: %w", err)
	}
	req, err := dnsRequestFromParams(params)
	if err != nil {
		return "", fmt.Errorf("dns_update: %w", err)
	}
	if _, err := e.Client.UpdateDNSRecord(ctx, zoneID, recordID, req); err != nil {
		return "", err
	}
	return fmt.Sprintf("DNS record updated: %s %s -> %s", req.Type, req.Name, req.Content), nil
}

func (e *Executor) executeDNSDelete(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	recordID, err := stringParam(params, "record_id")
	if err != nil {
		return "", fmt.Errorf("dns_delete: %w", err)
	}
	if err := e.Client.DeleteDNSRecord(ctx, zoneID, recordID); err != nil {
		return "", err
	}
	return fmt.Sprintf("DNS record deleted: %s", recordID), nil
}

func (e *Executor) executeCachePurge(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	purgeType, err := optionalStringParam(params, "type")
	if err != nil {
		return "", fmt.Errorf("cache_purge: %w", err)
	}
	if purgeType == "" {
		purgeType = "purge_all"
	}

	switch canonicalPurgeType(purgeType) {
	case "purge_all":
		if err := e.Client.PurgeAllCache(ctx, zoneID); err != nil {
			return "", err
		}
		return "all cache purged", nil
	case "purge_urls":
		urls, err := stringListParam(params, "urls")
		if err != nil {
			return "", fmt.Errorf("cache_purge: %w", err)
		}
		if err := e.Client.PurgeCacheByURLs(ctx, zoneID, urls); err != nil {
			return "", err
		}
		return fmt.Sprintf("cache purged for %d URLs", len(urls)), nil
	case "purge_tags":
		tags, err := stringListParam(params, "tags")
		if err != nil {
			return "", fmt.Errorf("cache_purge: %w", err)
		}
		if err := e.Client.PurgeCacheByTags(ctx, zoneID, tags); err != nil {
			return "", err
		}
		return fmt.Sprintf("cache purged for %d tags", len(tags)), nil
	case "purge_hosts":
		hosts, err := stringListParam(params, "hosts")
		if err != nil {
			return "", fmt.Errorf("cache_purge: %w", err)
		}
		if err := e.Client.PurgeCacheByHosts(ctx, zoneID, hosts); err != nil {
			return "", err
		}
		return fmt.Sprintf("cache purged for %d hosts", len(hosts)), nil
	default:
		return "", fmt.Errorf("cache_purge: unknown purge type %q", purgeType)
	}
}

func (e *Executor) executeFirewallRule(ctx context.Context, zoneID string, params map[string]any) (string, error) {
	ruleType, err := stringParam(params, "type")
	if err != nil {
		return "", fmt.Errorf("firewall_rule: %w", err)
	}

	switch canonicalRuleType(ruleType) {
	case "block_ip":
		ip, err := stringParam(params, "ip")
		if err != nil {
			return "", fmt.Errorf("firewall_rule block_ip: %w", err)
		}
		note, _ := optionalStringParam(params, "note")
		if _, err := e.Client.BlockIP(ctx, zoneID, ip, note); err != nil {
			return "", err
		}
		return fmt.Sprintf("IP blocked: %s", ip), nil
	case "whitelist_ip":
		ip, err := stringParam(params, "ip")
		if err != nil {
			return "", fmt.Errorf("firewall_rule whitelist_ip: %w", err)
		}
		note, _ := optionalStringParam(params, "note")
		if _, err := e.Client.AllowIP(ctx, zoneID, ip, note); err != nil {
			return "", err
		}
		return fmt.Sprintf("IP whitelisted: %s", ip), nil
	case "security_level":
		level, err := stringParam(params, "level")
		if err != nil {
			return "", fmt.Errorf("firewall_rule security_level: %w", err)
		}
		if err := e.Client.SetSecurityLevel(ctx, zoneID, level); err != nil {
			return "", err
		}
		return fmt.Sprintf("security level set to %s", level), nil
	case "under_attack":
		enable, err := boolParam(params, "enable")
		if err != nil {
			return "", fmt.Errorf("firewall_rule under_attack: %w", err)
		}
		if err := e.Client.SetUnderAttackMode(ctx, zoneID, enable); err != nil {
			return "", err
		}
		return fmt.Sprintf("Under Attack mode %s", enabledWord(enable)), nil
	case "browser_check":
		enable, err := boolParam(params, "enable")
		if err != nil {
			return "", fmt.Errorf("firewall_rule browser_check: %w", err)
		}
		if err := e.Client.SetBrowserCheck(ctx, zoneID, enable); err != nil {
			return "", err
		}
		return fmt.Sprintf("Browser Integrity Check %s", enabledWord(enable)), nil
	default:
		return "", fmt.Errorf("firewall_rule: unknown rule type %q", ruleType)
	}
}

func dnsRequestFromParams(params map[string]any) (domain.DNSRecordRequest, error) {
	recordType, err := stringParam(params, "type")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}
	name, err := stringParam(params, "name")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}
	content, err := stringParam(params, "content")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}
	ttl, err := optionalIntParam(params, "ttl")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}
	priority, err := optionalIntParam(params, "priority")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}
	comment, err := optionalStringParam(params, "comment")
	if err != nil {
		return domain.DNSRecordRequest{}, err
	}

	req := domain.DNSRecordRequest{
		Type:     recordType,
		Name:     name,
		Content:  content,
		TTL:      ttl,
		Priority: priority,
		Comment:  comment,
	}
	if proxied, ok := params["proxied"].(bool); ok {
		req.Proxied = &proxied
	}
	return req, nil
}

// canonicalSSLSetting folds the alternate spellings the assistant produces
// onto the API setting ids.
func canonicalSSLSetting(setting string) string {
	switch domain.NormalizeToken(setting) {
	case "tls_mode", "ssl_mode":
		return "ssl_mode"
	case "force_https", "always_https", "always_use_https":
		return "always_https"
	case "min_tls_version":
		return "min_tls_version"
	case "opportunistic_encryption":
		return "opportunistic_encryption"
	case "https_rewrites", "automatic_https_rewrites":
		return "automatic_https_rewrites"
	default:
		return ""
	}
}

func canonicalPurgeType(purgeType string) string {
	switch domain.NormalizeToken(purgeType) {
	case "purge_all", "all":
		return "purge_all"
	case "purge_urls", "purge_by_urls":
		return "purge_urls"
	case "purge_tags", "purge_by_tags":
		return "purge_tags"
	case "purge_hosts", "purge_by_hosts":
		return "purge_hosts"
	default:
		return ""
	}
}

func canonicalRuleType(ruleType string) string {
	switch domain.NormalizeToken(ruleType) {
	case "block_ip":
		return "block_ip"
	case "whitelist_ip", "allow_ip":
		return "whitelist_ip"
	case "security_level", "set_security_level":
		return "security_level"
	case "under_attack", "toggle_attack_mode":
		return "under_attack"
	case "browser_check", "toggle_browser_check":
		return "browser_check"
	default:
		return ""
	}
}

func enabledWord(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}

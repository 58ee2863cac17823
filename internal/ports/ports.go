// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like the Cloudflare HTTP client, the AI endpoint, or the CLI
// prompts.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., ResourceClient, Analyzer)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/cfai-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cfai/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Analyzer is the conversational analysis capability: given a system role
// description and a user message it produces free-form text. The core treats
// the reply as opaque; action extraction happens downstream.
type Analyzer interface {
	Chat(ctx context.Context, systemPrompt, userMessage string) (AnalysisResult, error)
}

// AnalysisResult is the raw model reply plus optional token accounting.
type AnalysisResult struct {
	Content    string
	TokensUsed int
}

// ResourceClient exposes one operation per remote resource mutation the
// executor can dispatch, plus the read operations the CLI renders. Each call
// owns its own transport concerns (timeout, encoding); the executor never
// retries.
type ResourceClient interface {
	// TLS/SSL settings
	SetSSLMode(ctx context.Context, zoneID, mode string) error
	SetAlwaysHTTPS(ctx context.Context, zoneID string, enable bool) error
	SetMinTLSVersion(ctx context.Context, zoneID, version string) error
	SetOpportunisticEncryption(ctx context.Context, zoneID string, enable bool) error
	SetAutomaticHTTPSRewrites(ctx context.Context, zoneID string, enable bool) error

	// Generic zone setting passthrough
	UpdateZoneSetting(ctx context.Context, zoneID, settingID string, value any) error

	// DNS records
	CreateDNSRecord(ctx context.Context, zoneID string, req domain.DNSRecordRequest) (domain.DNSRecord, error)
	UpdateDNSRecord(ctx context.Context, zoneID, recordID string, req domain.DNSRecordRequest) (domain.DNSRecord, error)
	DeleteDNSRecord(ctx context.Context, zoneID, recordID string) error

	// Cache purge variants
	PurgeAllCache(ctx context.Context, zoneID string) error
	PurgeCacheByURLs(ctx context.Context, zoneID string, urls []string) error
	PurgeCacheByTags(ctx context.Context, zoneID string, tags []string) error
	PurgeCacheByHosts(ctx context.Context, zoneID string, hosts []string) error

	// Firewall / access control
	BlockIP(ctx context.Context, zoneID, ip, note string) (domain.IPAccessRule, error)
	AllowIP(ctx context.Context, zoneID, ip, note string) (domain.IPAccessRule, error)
	SetSecurityLevel(ctx context.Context, zoneID, level string) error
	SetUnderAttackMode(ctx context.Context, zoneID string, enable bool) error
	SetBrowserCheck(ctx context.Context, zoneID string, enable bool) error
}

// ConfirmationPrompter is the human approval gate for an execution run. The
// executor asks once for the whole batch, once per high-risk action, and once
// after each failure with actions remaining. An error from any method means
// the confirmation channel itself broke and is fatal to the run; it is never
// treated as a decline.
type ConfirmationPrompter interface {
	ConfirmBatch(actions []domain.Action) (bool, error)
	ConfirmHighRisk(action domain.Action) (bool, error)
	ConfirmContinue(failedIndex int, failed domain.Action) (bool, error)
}

// AuditRepository persists execution outcomes for later inspection.
type AuditRepository interface {
	Save(records []domain.AuditRecord) error
	Records(limit int, search string) ([]domain.AuditRecord, error)
	Clear() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

package domain_test

import (
	"testing"

	"github.com/doeshing/cfai-go/internal/domain"
)

// TestConfig_AIDefaults tests fallback values for unset AI settings
func TestConfig_AIDefaults(t *testing.T) {
	var cfg domain.Config

	if got := cfg.AIAPIURL(); got != "https://api.openai.com/v1" {
		t.Errorf("AIAPIURL() = %q", got)
	}
	if got := cfg.AIModel(); got != "gpt-4o" {
		t.Errorf("AIModel() = %q", got)
	}
	if got := cfg.AIMaxTokens(); got != 4096 {
		t.Errorf("AIMaxTokens() = %d", got)
	}
	if got := cfg.AITemperature(); got != 0.7 {
		t.Errorf("AITemperature() = %v", got)
	}

	cfg.AI = domain.AISettings{APIURL: "http://localhost:8080/v1", Model: "qwen2", MaxTokens: 512, Temperature: 0.2}
	if cfg.AIAPIURL() != "http://localhost:8080/v1" || cfg.AIModel() != "qwen2" ||
		cfg.AIMaxTokens() != 512 || cfg.AITemperature() != 0.2 {
		t.Errorf("configured values not returned: %+v", cfg.AI)
	}
}

// TestCloudflareSettings_HasAuth tests credential detection
func TestCloudflareSettings_HasAuth(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.CloudflareSettings
		want     bool
	}{
		{name: "no credentials", settings: domain.CloudflareSettings{}, want: false},
		{name: "api token", settings: domain.CloudflareSettings{APIToken: "tok"}, want: true},
		{name: "email and key", settings: domain.CloudflareSettings{Email: "a@b.c", APIKey: "k"}, want: true},
		{name: "email only", settings: domain.CloudflareSettings{Email: "a@b.c"}, want: false},
		{name: "key only", settings: domain.CloudflareSettings{APIKey: "k"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.HasAuth(); got != tt.want {
				t.Errorf("HasAuth() = %v, want %v", got, tt.want)
			}
		})
	}
}

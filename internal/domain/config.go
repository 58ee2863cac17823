package domain

// Config is the persisted application configuration, loaded from
// ~/.cfai/config.yaml (overridable via CFAI_CONFIG).
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Cloudflare          CloudflareSettings `yaml:"cloudflare"`
	AI                  AISettings         `yaml:"ai"`
	Defaults            DefaultSettings    `yaml:"defaults"`
}

// CloudflareSettings holds the API credentials. An API token is the
// recommended method; email plus global API key is the legacy one.
type CloudflareSettings struct {
	APIToken  string `yaml:"api_token,omitempty"`
	Email     string `yaml:"email,omitempty"`
	APIKey    string `yaml:"api_key,omitempty"`
	AccountID string `yaml:"account_id,omitempty"`
}

// HasAuth reports whether at least one credential method is configured.
func (s CloudflareSettings) HasAuth() bool {
	return s.APIToken != "" || (s.Email != "" && s.APIKey != "")
}

// AISettings configures the OpenAI-compatible analysis endpoint.
type AISettings struct {
	APIURL      string  `yaml:"api_url,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// DefaultSettings carries user preferences applied when flags are absent.
type DefaultSettings struct {
	Zone         string `yaml:"zone,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	AutoApprove  bool   `yaml:"auto_approve,omitempty"`
}

// AIAPIURL returns the configured AI endpoint base with default fallback.
func (c Config) AIAPIURL() string {
	if c.AI.APIURL != "" {
		return c.AI.APIURL
	}
	return "https://api.openai.com/v1"
}

// AIModel returns the configured model with default fallback.
func (c Config) AIModel() string {
	if c.AI.Model != "" {
		return c.AI.Model
	}
	return "gpt-4o"
}

// AIMaxTokens returns the configured token limit with default fallback.
func (c Config) AIMaxTokens() int {
	if c.AI.MaxTokens > 0 {
		return c.AI.MaxTokens
	}
	return 4096
}

// AITemperature returns the configured sampling temperature with default fallback.
func (c Config) AITemperature() float64 {
	if c.AI.Temperature > 0 {
		return c.AI.Temperature
	}
	return 0.7
}

// Package ai implements the Analyzer port over an OpenAI-compatible
// chat-completions endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

// Analyzer sends system+user message pairs to a chat-completions API and
// returns the raw reply text.
type Analyzer struct {
	httpClient  *http.Client
	apiURL      string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}

// NewAnalyzer builds an analyzer from configuration. The AI API key must be
// configured; the assistant commands are unusable without it.
func NewAnalyzer(cfg domain.Config, httpClient *http.Client) (*Analyzer, error) {
	if cfg.AI.APIKey == "" {
		return nil, errors.New("AI API key not configured: run `cfai config setup` or set AI_API_KEY")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Analyzer{
		httpClient:  httpClient,
		apiURL:      strings.TrimRight(cfg.AIAPIURL(), "/"),
		apiKey:      cfg.AI.APIKey,
		model:       cfg.AIModel(),
		maxTokens:   cfg.AIMaxTokens(),
		temperature: cfg.AITemperature(),
	}, nil
}

// Chat implements ports.Analyzer.
func (a *Analyzer) Chat(ctx context.Context, systemPrompt, userMessage string) (ports.AnalysisResult, error) {
	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.AnalysisResult{}, err
	}

	endpoint := a.apiURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.AnalysisResult{}, err
	}
	req.Header.Set("authorization", "Bearer "+a.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return ports.AnalysisResult{}, fmt.Errorf("AI API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var detail bytes.Buffer
		_, _ = detail.ReadFrom(resp.Body)
		return ports.AnalysisResult{}, fmt.Errorf("AI API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(detail.String()))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.AnalysisResult{}, fmt.Errorf("decode AI response: %w", err)
	}

	result := ports.AnalysisResult{}
	if len(decoded.Choices) > 0 {
		result.Content = decoded.Choices[0].Message.Content
	}
	if decoded.Usage != nil {
		result.TokensUsed = decoded.Usage.TotalTokens
	}
	return result, nil
}

var _ ports.Analyzer = (*Analyzer)(nil)

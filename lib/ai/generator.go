// Package ai calls the external text-generation collaborator. The
// service is opaque to the engine: a prompt goes in, text comes out, and
// any failure surfaces as a single error. Retry policy belongs to
// callers.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slugline/slugline-go/lib/settings"
)

// Generator produces or reformats screenplay text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// HTTPGenerator talks to the configured endpoint over plain JSON.
type HTTPGenerator struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewHTTPGenerator(aiSettings settings.AISettings) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint: aiSettings.Endpoint,
		apiKey:   aiSettings.APIKey,
		model:    aiSettings.Model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether an endpoint is configured at all.
func (g *HTTPGenerator) Enabled() bool {
	return g.endpoint != ""
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Enabled() {
		return "", fmt.Errorf("ai generation is not configured")
	}

	body, err := json.Marshal(generateRequest{Model: g.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai generation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai generation failed: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai generation failed: %w", err)
	}
	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("ai generation failed: %w", err)
	}
	return decoded.Text, nil
}

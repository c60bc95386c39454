package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const anthropicBaseURL = "https://api.anthropic.com"

// AnthropicClient speaks the Anthropic messages API.
type AnthropicClient struct {
	cfg  Config
	http *http.Client
}

type anthropicBlock struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

func (c *AnthropicClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	wire := make([]anthropicMessage, len(messages))
	for i, m := range messages {
		wm := anthropicMessage{Role: m.Role}
		for _, part := range m.Parts {
			switch p := part.(type) {
			case TextPart:
				wm.Content = append(wm.Content, anthropicBlock{Type: "text", Text: p.Text})
			case MediaPart:
				wm.Content = append(wm.Content, anthropicBlock{
					Type: "image",
					Source: &anthropicSource{
						Type:      "base64",
						MediaType: p.MIMEType,
						Data:      base64.StdEncoding.EncodeToString(p.Data),
					},
				})
			}
		}
		wire[i] = wm
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"system":     system,
		"messages":   wire,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	base := c.cfg.BaseURL
	if base == "" {
		base = anthropicBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(base, "/")+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", classify(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return result.Content[0].Text, nil
}

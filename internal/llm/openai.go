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

const openAIBaseURL = "http://localhost:1234"

// OpenAIClient speaks any OpenAI-compatible chat completion endpoint,
// including local servers; the default base URL targets LM Studio.
type OpenAIClient struct {
	cfg  Config
	http *http.Client
}

type openAIContent struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIMessage struct {
	Role    string          `json:"role"`
	Content []openAIContent `json:"content"`
}

func (c *OpenAIClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	wire := []openAIMessage{{
		Role:    "system",
		Content: []openAIContent{{Type: "text", Text: system}},
	}}
	for _, m := range messages {
		wm := openAIMessage{Role: m.Role}
		for _, part := range m.Parts {
			switch p := part.(type) {
			case TextPart:
				wm.Content = append(wm.Content, openAIContent{Type: "text", Text: p.Text})
			case MediaPart:
				url := fmt.Sprintf("data:%s;base64,%s",
					p.MIMEType, base64.StdEncoding.EncodeToString(p.Data))
				wm.Content = append(wm.Content, openAIContent{
					Type:     "image_url",
					ImageURL: &openAIImageURL{URL: url},
				})
			}
		}
		wire = append(wire, wm)
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"messages":   wire,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	base := c.cfg.BaseURL
	if base == "" {
		base = openAIBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(base, "/")+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

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
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return result.Choices[0].Message.Content, nil
}

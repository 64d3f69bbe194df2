// Package translator wraps an OpenAI-compatible chat-completions API to
// provide text translation and language detection.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AutoLang is the sentinel source language meaning "run detection".
// Client methods never accept it; callers resolve it first.
const AutoLang = "auto"

// LanguageService is the interface the handlers consume; satisfied by
// *Client and by test stubs.
type LanguageService interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
}

// Request/response shapes of the chat-completions wire format.
type aiRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type aiResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int     `json:"index"`
		Message message `json:"message"`
	} `json:"choices"`
}

// Client is a thin, retry-free client for one provider endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

// Translate performs a single translation round trip. sourceLang must be
// a concrete language tag by the time this is called.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following text from %s to %s.
Only return the translated text without any explanations or additional content.
Preserve the original formatting (markdown, code blocks, newlines).

Text to translate: %s`, sourceLang, targetLang, text)

	out, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("translate %s->%s: %w", sourceLang, targetLang, err)
	}
	return out, nil
}

// DetectLanguage asks the model for the ISO 639-1 code of text. The code
// is best-effort: trimmed and lowercased, but not validated against a
// closed set of tags.
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Detect the language of the following text and return only the ISO 639-1 language code (e.g., 'en' for English, 'es' for Spanish).

Text: %s`, text)

	out, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	code := strings.ToLower(strings.Trim(out, " \t\r\n'\"."))
	if code == "" {
		return "", errors.New("detect language: empty result")
	}
	return code, nil
}

// complete sends one chat-completions request and returns the first
// choice's content.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("no api key configured")
	}

	body, err := json.Marshal(aiRequest{
		Model: c.model,
		Messages: []message{
			{
				Role:    "system",
				Content: "You are a professional translator. Translate the given text accurately while preserving the original meaning and tone.",
			},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("language service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed aiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

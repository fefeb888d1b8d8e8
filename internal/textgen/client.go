// Package textgen calls the OpenAI Responses API.
package textgen

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

	"github.com/joshu-sajeev/trendplanner/internal/logger"
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set.")

const defaultUpstreamMessage = "OpenAI request failed"

// UpstreamError is returned for any non-2xx response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Generator produces free-form text for an instruction and prompt.
type Generator interface {
	Generate(ctx context.Context, instructions, input string) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

var _ Generator = (*Client)(nil)

func NewClient(cfg Config, log *logger.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// WithModel returns a copy of the client bound to another model.
func (c *Client) WithModel(model string) *Client {
	clone := *c
	clone.model = model
	return &clone
}

func (c *Client) Model() string { return c.model }

type responsesRequest struct {
	Model        string `json:"model"`
	Instructions string `json:"instructions"`
	Input        string `json:"input"`
}

type responsesResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Type    string `json:"type"`
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends one request. Retries are left to the caller.
func (c *Client) Generate(ctx context.Context, instructions, input string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(responsesRequest{
		Model:        c.model,
		Instructions: instructions,
		Input:        input,
	}); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/responses", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("read response: %w", readErr)
	}

	var out responsesResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := defaultUpstreamMessage
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		c.log.Warn("OpenAI request failed",
			"model", c.model,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}

	c.log.Debug("OpenAI request completed",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return outputText(out), nil
}

func outputText(resp responsesResponse) string {
	if resp.OutputText != "" {
		return resp.OutputText
	}
	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" && c.Text != "" {
				out.WriteString(c.Text)
			}
		}
	}
	return out.String()
}

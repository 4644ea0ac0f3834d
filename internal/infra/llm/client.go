package infra_llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/config"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrProvider      = errors.New("model provider error")
	ErrNotConfigured = errors.New("model provider not configured")
	ErrEmptyReply    = errors.New("model returned no content")
)

const defaultTemperature = 0.4

// Client talks to one OpenAI-compatible chat completion endpoint.
type Client struct {
	name     string
	model    string
	apiKey   string
	endpoint string

	textFormat     bool
	outputFallback bool
	temperature    float64

	http    *http.Client
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

// WithTextFormat asks the backend for a plain text response_format.
func WithTextFormat() ClientOption {
	return func(c *Client) {
		c.textFormat = true
	}
}

// WithOutputTextFallback reads the top-level output_text field when a
// reply carries no choices.
func WithOutputTextFallback() ClientOption {
	return func(c *Client) {
		c.outputFallback = true
	}
}

func WithTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.temperature = t
	}
}

func New(cfg config.ModelBackend, opts ...ClientOption) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := &Client{
		name:        cfg.Name,
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		temperature: defaultTemperature,
		http:        &http.Client{Timeout: timeout},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "llm-" + c.name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// NewGroq builds the fast backend. Groq is asked for plain text output.
func NewGroq(cfg config.ModelBackend, opts ...ClientOption) *Client {
	return New(cfg, append([]ClientOption{WithTextFormat()}, opts...)...)
}

// NewGitHubModels builds the higher capability backend.
func NewGitHubModels(cfg config.ModelBackend, opts ...ClientOption) *Client {
	return New(cfg, append([]ClientOption{WithOutputTextFallback()}, opts...)...)
}

func (c *Client) Name() string  { return c.name }
func (c *Client) Model() string { return c.model }

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	OutputText string `json:"output_text"`
}

// Complete sends prompt as a single user message and returns the text of
// the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("%w: %s: %w", ErrProvider, c.name, ErrNotConfigured)
	}

	started := time.Now()
	text, err := c.breaker.Execute(func() (string, error) {
		return c.complete(ctx, prompt)
	})
	if err != nil {
		c.logger.Warn("completion failed",
			slog.String("provider", c.name),
			slog.String("model", c.model),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %s: %w", ErrProvider, c.name, err)
	}
	c.logger.Debug("completion done",
		slog.String("provider", c.name),
		slog.String("model", c.model),
		slog.Duration("took", time.Since(started)),
	)
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	}
	if c.textFormat {
		reqBody.ResponseFormat = map[string]string{"type": "text"}
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		const max = 1024
		if len(body) > max {
			body = body[:max]
		}
		return "", fmt.Errorf("unexpected status %s: %s", resp.Status, string(body))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}
	if len(out.Choices) > 0 {
		return out.Choices[0].Message.Content, nil
	}
	if c.outputFallback && strings.TrimSpace(out.OutputText) != "" {
		return out.OutputText, nil
	}
	return "", ErrEmptyReply
}

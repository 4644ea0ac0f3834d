package infra_tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/config"
	"github.com/humanbelnik/cinemind/core/internal/service/titlecache"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")
	ErrNotConfigured       = errors.New("catalog token not configured")
)

const (
	SortByPopularity = "popularity.desc"
	SortByRating     = "vote_average.desc"

	detailsAppend = "credits,recommendations,videos,watch/providers"
)

// statusError is a non-2xx catalog reply.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog: unexpected status %d: %s", e.code, e.body)
}

type Client struct {
	http    *http.Client
	baseURL string
	token   string

	breaker *gobreaker.CircuitBreaker[[]byte]
	titles  *titlecache.Cache
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

// WithTitleCache shares a title cache between clients. By default every
// client owns its own cache.
func WithTitleCache(cache *titlecache.Cache) ClientOption {
	return func(c *Client) {
		c.titles = cache
	}
}

func New(cfg config.Catalog, opts ...ClientOption) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	c := &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		titles:  titlecache.New(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return se.code < http.StatusInternalServerError
			}
			return err == nil
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

func (c *Client) Titles() *titlecache.Cache {
	return c.titles
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ErrNotConfigured)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		u := c.baseURL + path
		if len(params) > 0 {
			u += "?" + params.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			const max = 512
			if len(b) > max {
				b = b[:max]
			}
			return nil, &statusError{code: resp.StatusCode, body: string(b)}
		}
		return b, nil
	})
	if err != nil {
		c.logger.Warn("catalog request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUpstreamUnavailable, path, err)
	}
	return nil
}

// Raw returns the undecoded reply for path, used by the catalog proxy.
func (c *Client) Raw(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

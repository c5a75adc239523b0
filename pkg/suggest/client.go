package suggest

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"trendscore-go/pkg/logger"
	"trendscore-go/pkg/metrics"
)

// DefaultEndpoint is the public autocomplete endpoint queried per keyword.
// The keyword is URL-encoded and appended to this prefix.
const DefaultEndpoint = "https://suggestqueries.google.com/complete/search?client=firefox&q="

// DefaultTimeout bounds a single suggestion fetch. On timeout the fetch
// degrades to an empty suggestion list.
const DefaultTimeout = 3 * time.Second

// Provider returns autocomplete suggestions for a keyword. Implementations
// must degrade to an empty list on any transport or decoding failure; errors
// never cross this boundary.
type Provider interface {
	Suggestions(ctx context.Context, keyword string) []string
}

// Client queries an autocomplete-style endpoint over fasthttp with a bounded
// timeout and browser-like headers.
type Client struct {
	client   *fasthttp.Client
	endpoint string
	timeout  time.Duration
	log      *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the autocomplete endpoint prefix.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a suggestion client with the default endpoint and timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client: &fasthttp.Client{
			ReadTimeout:  DefaultTimeout,
			WriteTimeout: DefaultTimeout,
		},
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		log:      logger.GetLogger().WithField("component", "suggest_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Suggestions fetches autocomplete suggestions for keyword. Timeouts,
// non-success statuses and malformed bodies all degrade to an empty list.
func (c *Client) Suggestions(ctx context.Context, keyword string) []string {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint + url.QueryEscape(strings.ToLower(keyword)))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		metrics.SuggestFailures.Inc()
		c.log.WithError(err).WithField("keyword", keyword).Warn("Suggestion fetch failed")
		return nil
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		metrics.SuggestFailures.Inc()
		c.log.WithFields(map[string]interface{}{
			"keyword": keyword,
			"status":  resp.StatusCode(),
		}).Warn("Suggestion endpoint returned non-success status")
		return nil
	}

	suggestions, err := ParseSuggestions(resp.Body())
	if err != nil {
		metrics.SuggestFailures.Inc()
		c.log.WithError(err).WithField("keyword", keyword).Warn("Failed to decode suggestion response")
		return nil
	}

	return suggestions
}

// ParseSuggestions decodes the array-of-arrays autocomplete response format,
// where index 1 holds the suggestion strings.
func ParseSuggestions(body []byte) ([]string, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, err
	}
	if len(parts) < 2 {
		return nil, nil
	}

	var suggestions []string
	if err := json.Unmarshal(parts[1], &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

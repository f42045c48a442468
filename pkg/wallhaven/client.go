// Package wallhaven is a typed client for the wallhaven.cc REST API. It
// covers the wallpaper, tag, settings, collection and search endpoints,
// applies the API's 45-calls-per-minute limit process-wide, and retries
// transient rate-limit responses before surfacing them as errors.
package wallhaven

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client issues requests against the wallhaven.cc API. The zero-config
// client from New works anonymously; an API key unlocks NSFW wallpapers,
// user settings and private collections.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client during construction.
type Option func(*Client)

// WithAPIKey sets the API key sent in the X-API-Key header of every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API host. Used by tests to target a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client. All clients share one process-wide rate limiter, so
// creating more clients does not buy more request budget.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    sharedLimiter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

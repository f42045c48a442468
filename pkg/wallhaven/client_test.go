package wallhaven

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

// newTestClient builds a client aimed at a test server, with the shared
// rate limiter replaced so test calls never block each other.
func newTestClient(baseURL string, opts ...Option) *Client {
	c := New(append([]Option{WithBaseURL(baseURL)}, opts...)...)
	c.limiter = rate.NewLimiter(rate.Inf, 0)
	return c
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, defaultUserAgent, c.userAgent)
	assert.Empty(t, c.apiKey)
	assert.NotNil(t, c.httpClient)
	assert.Same(t, sharedLimiter, c.limiter)
}

func TestNewOptions(t *testing.T) {
	hc := &http.Client{}
	c := New(
		WithAPIKey("abc123"),
		WithHTTPClient(hc),
		WithBaseURL("http://localhost:8080"),
		WithUserAgent("custom/1.0"),
	)
	assert.Equal(t, "abc123", c.apiKey)
	assert.Same(t, hc, c.httpClient)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
	assert.Equal(t, "custom/1.0", c.userAgent)
}

func TestSharedLimiterAcrossClients(t *testing.T) {
	a, b := New(), New()
	assert.Same(t, a.limiter, b.limiter)
}

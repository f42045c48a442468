package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dixieflatline76/wallhaven/util/log"
)

// Retry budget for HTTP 429 responses. The backoff doubles per attempt from
// the base, mirroring the limits documented at wallhaven.cc/help/api#limits.
const (
	maxRetries       = 5
	retryBackoffBase = 100 * time.Millisecond
)

// getEndpoint performs one rate-limited GET against the API and returns the
// raw JSON body. A 429 response is retried up to maxRetries times with
// exponential backoff before it surfaces as ErrRateLimited. All other
// non-200 statuses map onto the error taxonomy in errors.go.
func (c *Client) getEndpoint(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	backoff := retryBackoffBase
	for attempt := 0; ; attempt++ {
		body, status, err := c.doGet(ctx, url)
		if err != nil {
			return nil, err
		}

		if status != http.StatusTooManyRequests {
			return checkResponse(url, status, body)
		}
		if attempt == maxRetries {
			return nil, fmt.Errorf("GET %s after %d retries: %w", url, maxRetries, ErrRateLimited)
		}

		log.Debugf("wallhaven returned 429 for %s, retrying in %v", url, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
}

// doGet issues the request and drains the body. Transport failures are
// returned as-is; status handling is the caller's job.
func (c *Client) doGet(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// checkResponse maps a terminal status code onto the error taxonomy. A 200
// with an empty body and a 200 with undecodable JSON are distinct failures.
func checkResponse(url string, status int, body []byte) ([]byte, error) {
	switch status {
	case http.StatusOK:
		if len(body) == 0 {
			return nil, fmt.Errorf("GET %s: %w", url, ErrEmptyResponse)
		}
		if !json.Valid(body) {
			return nil, fmt.Errorf("GET %s: %w", url, ErrInvalidJSON)
		}
		return body, nil
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("GET %s: %w", url, ErrBadRequest)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return nil, fmt.Errorf("GET %s returned %d: %w", url, status, ErrServerError)
	default:
		return nil, fmt.Errorf("GET %s returned %d: %w", url, status, ErrUnexpectedStatus)
	}
}

package wallhaven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEndpointStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request 400", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "not found 404", status: http.StatusNotFound, wantErr: ErrBadRequest},
		{name: "unprocessable 422", status: http.StatusUnprocessableEntity, wantErr: ErrBadRequest},
		{name: "server error 500", status: http.StatusInternalServerError, wantErr: ErrServerError},
		{name: "bad gateway 502", status: http.StatusBadGateway, wantErr: ErrServerError},
		{name: "unavailable 503", status: http.StatusServiceUnavailable, wantErr: ErrServerError},
		{name: "unauthorized 401", status: http.StatusUnauthorized, wantErr: ErrUnexpectedStatus},
		{name: "teapot 418", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
		{name: "ok empty body", status: http.StatusOK, body: "", wantErr: ErrEmptyResponse},
		{name: "ok invalid json", status: http.StatusOK, body: "{invalid_json", wantErr: ErrInvalidJSON},
		{name: "ok valid json", status: http.StatusOK, body: `{"data":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := newTestClient(ts.URL)
			body, err := c.getEndpoint(context.Background(), ts.URL+"/api/v1/test")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, body)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func TestGetEndpointSendsHeaders(t *testing.T) {
	var gotKey, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, WithAPIKey("secret-key"))
	_, err := c.getEndpoint(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestGetEndpointRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	body, err := c.getEndpoint(context.Background(), ts.URL)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetEndpointRateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	_, err := c.getEndpoint(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrRateLimited)
	// Initial attempt plus the full retry budget.
	assert.Equal(t, int32(maxRetries+1), calls.Load())
}

func TestGetEndpointContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(ts.URL)
	_, err := c.getEndpoint(ctx, ts.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

package wallhaven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "valid-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)

	assert.NoError(t, c.CheckAPIKey(context.Background(), "valid-key"))

	err := c.CheckAPIKey(context.Background(), "wrong-key")
	assert.ErrorIs(t, err, ErrBadRequest)
}

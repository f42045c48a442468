package wallhaven

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// CheckAPIKey verifies a candidate API key by requesting the settings
// endpoint, which requires authentication. The key is sent both as a Bearer
// token and as the apikey query parameter, matching what the site accepts.
// A nil return means the key is valid.
func (c *Client) CheckAPIKey(ctx context.Context, apiKey string) error {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	client := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+settingsPath+"?apikey="+apiKey, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	return fmt.Errorf("API key rejected with status %d: %w", resp.StatusCode, ErrBadRequest)
}

package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dixieflatline76/wallhaven/pkg/query"
)

// Wallpaper fetches a single wallpaper by its ID.
func (c *Client) Wallpaper(ctx context.Context, id string) (*Wallpaper, error) {
	body, err := c.getEndpoint(ctx, c.baseURL+fmt.Sprintf(wallpaperPath, id))
	if err != nil {
		return nil, err
	}

	var env struct {
		Data Wallpaper `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding wallpaper %s: %w", id, err)
	}
	return &env.Data, nil
}

// Tag fetches a single tag by its ID.
func (c *Client) Tag(ctx context.Context, id int) (*Tag, error) {
	body, err := c.getEndpoint(ctx, c.baseURL+fmt.Sprintf(tagPath, id))
	if err != nil {
		return nil, err
	}

	var env struct {
		Data Tag `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding tag %d: %w", id, err)
	}
	return &env.Data, nil
}

// UserSettings fetches the browsing settings of the authenticated user.
// The client must have been constructed with an API key.
func (c *Client) UserSettings(ctx context.Context) (*UserSettings, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	body, err := c.getEndpoint(ctx, c.baseURL+settingsPath)
	if err != nil {
		return nil, err
	}

	var env struct {
		Data UserSettings `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding user settings: %w", err)
	}
	return &env.Data, nil
}

// Collections lists the collections of the authenticated user, including
// private ones. The client must have been constructed with an API key; for
// another user's public collections use UserCollections.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	return c.fetchCollections(ctx, c.baseURL+collectionsPath)
}

// UserCollections lists the public collections of the named user.
func (c *Client) UserCollections(ctx context.Context, username string) ([]Collection, error) {
	return c.fetchCollections(ctx, c.baseURL+collectionsPath+"/"+url.PathEscape(username))
}

func (c *Client) fetchCollections(ctx context.Context, endpoint string) ([]Collection, error) {
	body, err := c.getEndpoint(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var env struct {
		Data []Collection `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding collections: %w", err)
	}
	return env.Data, nil
}

// Search fetches a single page of search results. Parameters are validated
// against the search grammar before any request is made; include a page
// parameter to select a page, or use SearchPages to walk them all.
func (c *Client) Search(ctx context.Context, params url.Values) ([]Wallpaper, *Meta, error) {
	return c.fetchListing(ctx, searchPath, params)
}

// Collection fetches a single page of the wallpapers in a user's collection.
// Only the purity and page parameters apply here.
func (c *Client) Collection(ctx context.Context, username string, id int, params url.Values) ([]Wallpaper, *Meta, error) {
	return c.fetchListing(ctx, fmt.Sprintf(collectionPath, url.PathEscape(username), id), params)
}

// fetchListing fetches one page of a data/meta listing endpoint.
func (c *Client) fetchListing(ctx context.Context, path string, params url.Values) ([]Wallpaper, *Meta, error) {
	qs, err := query.String(params)
	if err != nil {
		return nil, nil, err
	}

	body, err := c.getEndpoint(ctx, c.baseURL+path+qs)
	if err != nil {
		return nil, nil, err
	}

	var env struct {
		Data []Wallpaper `json:"data"`
		Meta *Meta       `json:"meta"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("decoding listing %s: %w", path, err)
	}
	return env.Data, env.Meta, nil
}

package wallhaven

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Pages walks a multi-page search or collection result lazily, one API call
// per page. It follows the scanner idiom:
//
//	pages, err := client.SearchPages(params)
//	if err != nil { ... }
//	for pages.Next(ctx) {
//	    use(pages.Wallpapers(), pages.Meta())
//	}
//	if err := pages.Err(); err != nil { ... }
//
// The iterator owns its page cursor: it starts at page 1 and stops once the
// current page passes the last page reported by the most recent response.
// A Pages is single-pass; construct a new one to walk the result again.
type Pages struct {
	client *Client
	path   string
	params url.Values

	current int
	last    int

	wallpapers []Wallpaper
	meta       *Meta
	err        error
	done       bool
}

// SearchPages creates an iterator over every page of a search result. The
// params must not contain a page key; the iterator drives pagination itself
// and rejects the override with ErrPageOwnedByIterator.
func (c *Client) SearchPages(params url.Values) (*Pages, error) {
	return c.newPages(searchPath, params)
}

// CollectionPages creates an iterator over every page of the wallpapers in
// a user's collection. Only the purity parameter applies; a page key is
// rejected with ErrPageOwnedByIterator.
func (c *Client) CollectionPages(username string, id int, params url.Values) (*Pages, error) {
	return c.newPages(fmt.Sprintf(collectionPath, url.PathEscape(username), id), params)
}

func (c *Client) newPages(path string, params url.Values) (*Pages, error) {
	if params.Has("page") {
		return nil, ErrPageOwnedByIterator
	}

	// Copy so later caller mutations can't change the query mid-iteration.
	copied := make(url.Values, len(params))
	for k, vs := range params {
		copied[k] = append([]string(nil), vs...)
	}

	return &Pages{
		client:  c,
		path:    path,
		params:  copied,
		current: 1,
		last:    1,
	}, nil
}

// Next fetches the next page. It returns false when the pages are exhausted
// or a fetch failed; after a failure Err reports the cause and the iterator
// stays terminal.
func (p *Pages) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}
	if p.current > p.last {
		p.done = true
		return false
	}

	p.params.Set("page", strconv.Itoa(p.current))
	wallpapers, meta, err := p.client.fetchListing(ctx, p.path, p.params)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}
	if meta == nil {
		p.err = fmt.Errorf("listing %s: response carried no meta: %w", p.path, ErrInvalidJSON)
		p.done = true
		return false
	}

	p.wallpapers = wallpapers
	p.meta = meta
	p.last = meta.LastPage
	p.current++
	return true
}

// Wallpapers returns the most recently fetched page of results.
func (p *Pages) Wallpapers() []Wallpaper {
	return p.wallpapers
}

// Meta returns the pagination metadata of the most recently fetched page.
func (p *Pages) Meta() *Meta {
	return p.meta
}

// Err returns the first error encountered while paging, if any.
func (p *Pages) Err() error {
	return p.err
}

package query

import (
	"net/url"

	qs "github.com/google/go-querystring/query"
)

// SearchOptions is a typed alternative to a hand-built url.Values for the
// search endpoint. Zero-valued fields are omitted from the encoded result.
type SearchOptions struct {
	// Query is the free-text q term. Use BuildQ to construct one from tags,
	// a username, and an image type.
	Query string `url:"q,omitempty"`

	// Categories and Purity are 3-digit binary strings, one digit per
	// category (general/anime/people) and purity (sfw/sketchy/nsfw).
	Categories string `url:"categories,omitempty"`
	Purity     string `url:"purity,omitempty"`

	// Sorting is one of date_added, relevance, random, views, favorites,
	// toplist. Order is asc or desc. TopRange applies when Sorting is
	// toplist and is one of 1d, 3d, 1w, 1M, 3M, 6M, 1y.
	Sorting  string `url:"sorting,omitempty"`
	Order    string `url:"order,omitempty"`
	TopRange string `url:"topRange,omitempty"`

	// AtLeast is a minimum resolution such as 1920x1080. Resolutions and
	// Ratios take one or more WxH values.
	AtLeast     string   `url:"atleast,omitempty"`
	Resolutions []string `url:"resolutions,omitempty,comma"`
	Ratios      []string `url:"ratios,omitempty,comma"`

	// Colors is a 6-digit uppercase hex color.
	Colors string `url:"colors,omitempty"`

	// Seed pins the shuffle of a random sort so pages stay consistent.
	Seed string `url:"seed,omitempty"`

	// Page selects a single result page. Leave it zero when the options
	// feed a page iterator, which owns the page counter itself.
	Page int `url:"page,omitempty"`
}

// Values encodes the options into url.Values and validates each resulting
// pair against the parameter grammar.
func (o SearchOptions) Values() (url.Values, error) {
	vals, err := qs.Values(o)
	if err != nil {
		return nil, err
	}
	for k, vs := range vals {
		for _, v := range vs {
			if err := Validate(k, v); err != nil {
				return nil, err
			}
		}
	}
	return vals, nil
}

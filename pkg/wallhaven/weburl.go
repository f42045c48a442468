package wallhaven

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseWebURL converts a wallhaven.cc web URL, as copied from a browser,
// into the equivalent API URL and classifies it as a search or collection
// source. Supported inputs are /search URLs (with or without a query
// string), /user/{name}/favorites/{id} URLs, and URLs already in API form.
// Any apikey or page parameter is stripped so the result is safe to store
// and to hand to a page iterator.
func ParseWebURL(webURL string) (string, URLType, error) {
	trimmed := strings.TrimSpace(webURL)
	var baseURL string
	kind := URLTypeUnknown

	switch {
	case userFavoritesRegex.MatchString(trimmed):
		m := userFavoritesRegex.FindStringSubmatch(trimmed)
		// m[1]=username, m[2]=collection ID
		baseURL = DefaultBaseURL + fmt.Sprintf("/api/v1/collections/%s/%s", m[1], m[2])
		kind = URLTypeCollection

	case webSearchRegex.MatchString(trimmed):
		m := webSearchRegex.FindStringSubmatch(trimmed)
		baseURL = DefaultBaseURL + searchPath
		if len(m) == 2 && m[1] != "" {
			baseURL += m[1] // carry the query string over
		}
		kind = URLTypeSearch

	case apiCollectionRegex.MatchString(trimmed):
		baseURL = trimmed
		kind = URLTypeCollection

	case apiSearchRegex.MatchString(trimmed):
		baseURL = trimmed
		kind = URLTypeSearch

	default:
		return "", URLTypeUnknown, fmt.Errorf("URL is not a recognized wallhaven source: %s", trimmed)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", URLTypeUnknown, fmt.Errorf("parsing transformed URL %q: %w", baseURL, err)
	}

	q := parsed.Query()
	changed := false
	// Never store credentials or pagination state in the saved query.
	if q.Has("apikey") {
		q.Del("apikey")
		changed = true
	}
	if q.Has("page") {
		q.Del("page")
		changed = true
	}
	if changed {
		parsed.RawQuery = q.Encode()
	}

	return parsed.String(), kind, nil
}

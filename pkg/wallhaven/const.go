package wallhaven

import "regexp"

// DefaultBaseURL is the production wallhaven.cc API host. Tests point the
// client elsewhere with WithBaseURL.
const DefaultBaseURL = "https://wallhaven.cc"

// API endpoint paths, relative to the base URL.
const (
	searchPath      = "/api/v1/search"
	settingsPath    = "/api/v1/settings"
	collectionsPath = "/api/v1/collections"
	wallpaperPath   = "/api/v1/w/%s"
	tagPath         = "/api/v1/tag/%d"
	collectionPath  = "/api/v1/collections/%s/%d"
)

const defaultUserAgent = "go-wallhaven/" + Version

// Version is the library version reported in the User-Agent header.
const Version = "1.0.0"

// Compiled patterns for recognizing wallhaven web URLs in ParseWebURL.
var (
	// userFavoritesRegex matches /user/{user}/favorites/{id} and captures user & id.
	userFavoritesRegex = regexp.MustCompile(`^https:\/\/wallhaven\.cc\/user\/([a-zA-Z0-9_]+)\/favorites\/([0-9]+)\/?(?:\?.*)?$`)

	// webSearchRegex matches /search (non-API) and captures the optional query string part.
	webSearchRegex = regexp.MustCompile(`^https:\/\/wallhaven\.cc\/search\/?(\?.*)?$`)

	// apiCollectionRegex checks if a URL starts with the API collection path prefix.
	apiCollectionRegex = regexp.MustCompile(`^https:\/\/wallhaven\.cc\/api\/v1\/collections\/`)

	// apiSearchRegex checks if a URL starts with the API search path prefix.
	apiSearchRegex = regexp.MustCompile(`^https:\/\/wallhaven\.cc\/api\/v1\/search`)
)

// URLType indicates the kind of wallhaven source a web URL refers to.
type URLType int

const (
	// URLTypeUnknown represents a web URL pattern this library does not recognize.
	URLTypeUnknown URLType = iota
	// URLTypeSearch represents a web search query URL pattern.
	URLTypeSearch
	// URLTypeCollection represents a favorites/collection URL pattern.
	URLTypeCollection
)

// String provides a human-readable representation for the URLType.
func (t URLType) String() string {
	switch t {
	case URLTypeSearch:
		return "Search"
	case URLTypeCollection:
		return "Collection"
	default:
		return "Unknown"
	}
}

package wallhaven

import "errors"

// Sentinel errors for API call outcomes. Endpoint helpers wrap these with
// request context using fmt.Errorf("...: %w", err); callers classify with
// errors.Is.
var (
	// ErrBadRequest indicates the API rejected the request (HTTP 400, 404 or 422).
	ErrBadRequest = errors.New("bad request")

	// ErrServerError indicates a transient server-side failure (HTTP 500, 502 or 503).
	ErrServerError = errors.New("server error")

	// ErrRateLimited indicates HTTP 429 persisted past the retry budget, as per
	// https://wallhaven.cc/help/api#limits.
	ErrRateLimited = errors.New("API request speed limit reached")

	// ErrUnexpectedStatus indicates a non-200 status code outside the mapped set.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrEmptyResponse indicates a 200 response with no body to parse.
	ErrEmptyResponse = errors.New("empty response body")

	// ErrInvalidJSON indicates a 200 response whose body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid content returned")

	// ErrAPIKeyRequired indicates an endpoint that needs authentication was
	// called on a client constructed without an API key.
	ErrAPIKeyRequired = errors.New("no API key supplied")

	// ErrPageOwnedByIterator indicates a page parameter was supplied to a
	// page iterator, which manages the page counter itself.
	ErrPageOwnedByIterator = errors.New("page parameter is owned by the iterator")
)

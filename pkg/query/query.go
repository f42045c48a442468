// Package query validates wallhaven.cc search parameters and assembles the
// query strings sent to the API. Every parameter accepted by the search and
// collection endpoints has a fixed grammar; validating locally avoids burning
// a rate-limited network call on a request the API would reject anyway.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Sentinel errors returned by parameter validation. Callers check these with
// errors.Is; the wrapped message names the offending key.
var (
	// ErrUnknownParameter indicates a parameter key the API does not recognize.
	ErrUnknownParameter = errors.New("unknown search parameter")

	// ErrInvalidValue indicates a parameter value that fails its grammar.
	ErrInvalidValue = errors.New("invalid parameter value")
)

// grammar maps each recognized parameter key to the pattern its value must
// fully match, as per https://wallhaven.cc/help/api#search. The q parameter
// is handled separately because its grammar needs a negative condition that
// RE2 cannot express.
var grammar = map[string]*regexp.Regexp{
	"categories":  regexp.MustCompile(`^[01]{3}$`),
	"purity":      regexp.MustCompile(`^[01]{3}$`),
	"sorting":     regexp.MustCompile(`^(date_added|relevance|random|views|favorites|toplist)$`),
	"order":       regexp.MustCompile(`^(desc|asc)$`),
	"topRange":    regexp.MustCompile(`^(1d|3d|1w|1M|3M|6M|1y)$`),
	"atleast":     regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`),
	"resolutions": regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*(,[1-9][0-9]*x[1-9][0-9]*)*$`),
	"ratios":      regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*(,[1-9][0-9]*x[1-9][0-9]*)*$`),
	"colors":      regexp.MustCompile(`^[0-9A-F]{6}$`),
	"page":        regexp.MustCompile(`^[1-9][0-9]*$`),
	"seed":        regexp.MustCompile(`^[a-zA-Z0-9]{6}$`),
}

// q accepts exactly one id: term, exactly one like: term, or any free text
// that contains neither.
var (
	qIDRegex   = regexp.MustCompile(`^id:\d+$`)
	qLikeRegex = regexp.MustCompile(`^like:[a-zA-Z0-9]{6}$`)
)

// Validate checks value against the grammar for key. It returns
// ErrUnknownParameter for a key the API does not define and ErrInvalidValue
// for a value that does not fully match the key's pattern.
func Validate(key, value string) error {
	if key == "q" {
		return validateQ(value)
	}
	re, ok := grammar[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownParameter)
	}
	if !re.MatchString(value) {
		return fmt.Errorf("value %q for %q: %w", value, key, ErrInvalidValue)
	}
	return nil
}

func validateQ(value string) error {
	if qIDRegex.MatchString(value) || qLikeRegex.MatchString(value) {
		return nil
	}
	// id: and like: terms must stand alone; mixing them with anything else
	// is rejected by the API.
	if strings.Contains(value, "id:") || strings.Contains(value, "like:") {
		return fmt.Errorf("value %q for %q: %w", value, "q", ErrInvalidValue)
	}
	return nil
}

// String assembles a URL query string from params, validating every pair.
// An empty set of params yields the empty string; otherwise the result has
// the form "?k1=v1&k2=v2" with keys in sorted order. Values may arrive
// partially percent-encoded (the q term built by BuildQ mixes encoded and
// raw segments), so each is requoted: existing %XX escapes pass through
// and any remaining unsafe bytes are encoded.
func String(params url.Values) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(params))
	for _, k := range keys {
		for _, v := range params[k] {
			if err := Validate(k, v); err != nil {
				return "", err
			}
			pairs = append(pairs, k+"="+requote(v))
		}
	}
	return "?" + strings.Join(pairs, "&"), nil
}

// querySafe are the bytes allowed verbatim in a query component, beyond
// ASCII letters and digits.
const querySafe = "-._~!$&'()*+,;=:@/?"

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// requote percent-encodes the bytes of s that are not valid in a URL query
// component, leaving well-formed %XX escapes untouched so an already
// encoded value is never double-encoded.
func requote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteString(s[i : i+3])
			i += 2
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			strings.IndexByte(querySafe, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

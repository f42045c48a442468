package query

import (
	"fmt"
	"net/url"
	"strings"
)

// imageTypes are the file types the type: search term accepts.
var imageTypes = []string{"png", "jpg", "jpeg"}

// BuildQ assembles the free-text q search term from its higher-level parts.
// The q grammar is too permissive to validate directly, so this builder
// produces a term the API is known to accept: include tags are prefixed
// with +, exclude tags with -, the username with @, and the image type with
// "type:". Tag segments are percent-encoded individually (spaces inside a
// tag become +) and joined by encoded spaces; the username and type segments
// ride along unencoded. The result is trimmed of surrounding whitespace.
//
// The id: and like: terms are not supported here; they must stand alone and
// can be passed straight to the q parameter.
func BuildQ(includeTags, excludeTags []string, username, imageType string) (string, error) {
	var b strings.Builder

	for _, tag := range includeTags {
		b.WriteString("%20%2B")
		b.WriteString(url.QueryEscape(tag))
	}
	for _, tag := range excludeTags {
		b.WriteString("%20-")
		b.WriteString(url.QueryEscape(tag))
	}
	if username != "" {
		b.WriteString(" @")
		b.WriteString(username)
	}
	if imageType != "" {
		valid := false
		for _, t := range imageTypes {
			if imageType == t {
				valid = true
				break
			}
		}
		if !valid {
			return "", fmt.Errorf("image type %q must be one of %s: %w",
				imageType, strings.Join(imageTypes, ", "), ErrInvalidValue)
		}
		b.WriteString(" type:")
		b.WriteString(imageType)
	}

	return strings.TrimSpace(b.String()), nil
}

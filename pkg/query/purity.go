package query

import "fmt"

// purityBits maps each purity name to its digit position in the 3-bit form.
var purityBits = map[string]int{
	"sfw":     100,
	"sketchy": 10,
	"nsfw":    1,
}

// PurityString converts a list of purity names, as returned by the user
// settings endpoint, into the 3-digit binary form the purity search
// parameter expects. ["sfw", "sketchy"] becomes "110". This lets a caller
// round-trip their account settings into a new search without hand-building
// the bit string.
func PurityString(purities []string) (string, error) {
	total := 0
	for _, p := range purities {
		bit, ok := purityBits[p]
		if !ok {
			return "", fmt.Errorf("purity %q: %w", p, ErrInvalidValue)
		}
		total += bit
	}
	return fmt.Sprintf("%03d", total), nil
}

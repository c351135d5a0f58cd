// Package acceptmatch matches candidate content codings and media types
// against the Accept-Encoding and Accept request fields of RFC 9110, and
// orders the resulting matches so that a caller holding several candidate
// representations can pick the single best one to serve.
//
// All functions are pure: they keep no state between calls and are safe for
// concurrent use. Malformed header fragments never cause a failure; they
// are skipped and the remaining well-formed directives are used.
//
// The two match families have distinct outcome types, so matches from an
// Accept-Encoding field cannot be compared against matches from an Accept
// field.
package acceptmatch

// compareQ orders two weights by exact float equality. Quality values
// carry at most three fractional digits, so no epsilon band is needed.
func compareQ(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

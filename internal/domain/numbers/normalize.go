package numbers

import "regexp"

var separators = regexp.MustCompile(`[-\s()]+`)

// Normalize strips separator characters (hyphens, spaces, parentheses) from a
// phone number. Digits and a leading plus sign survive. Normalizing an
// already-normalized number is a no-op.
func Normalize(raw string) string {
	return separators.ReplaceAllString(raw, "")
}

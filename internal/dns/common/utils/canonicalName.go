package utils

import "strings"

// CanonicalDNSName returns a DNS name in the form the wire decoder emits:
// - Lowercased
// - Trimmed of surrounding whitespace
// - Exactly one trailing dot
// Comparing two names through this function makes glue matching immune to
// case differences and to whether a caller supplied the trailing dot.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name + "."
}

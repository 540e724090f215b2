package cache

import "strings"

// KeyPrefix namespaces every key written by this service.
const KeyPrefix = "trivia"

// Key joins parts under KeyPrefix with ":". Empty parts are skipped.
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, KeyPrefix)
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ":")
}

// CategoryListKey holds the encoded category listing.
func CategoryListKey() string {
	return Key("category", "list", "all")
}

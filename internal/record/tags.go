package record

import (
	"regexp"
	"sort"
	"strings"
)

// tagSplitRegex matches any run of comma, semicolon, or whitespace.
var tagSplitRegex = regexp.MustCompile(`[,;\s]+`)

// TagSet is a deduplicated, lexically sorted set of lowercase tags.
type TagSet []string

// ParseTags splits a raw tag string into a TagSet. Tokens are lowercased,
// empties dropped, duplicates removed, and the result sorted, so parsing
// an already-canonical string is a no-op round trip.
func ParseTags(s string) TagSet {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var tags TagSet
	for _, part := range tagSplitRegex.Split(s, -1) {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	sort.Strings(tags)
	return tags
}

// String returns the canonical comma-joined form used for storage and CSV.
func (t TagSet) String() string {
	return strings.Join(t, ",")
}

// Contains reports whether the set holds the exact tag (after lowercasing
// the argument).
func (t TagSet) Contains(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, have := range t {
		if have == tag {
			return true
		}
	}
	return false
}

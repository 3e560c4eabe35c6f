package record

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// FallbackName is used when a name slugs down to nothing.
const FallbackName = "unnamed"

var (
	// whitespaceRegex matches one or more whitespace characters
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// nameStripRegex matches runs of characters not allowed in a name slug
	nameStripRegex = regexp.MustCompile(`[^a-z0-9_-]+`)

	// underscoreRunRegex collapses repeated underscores left by stripping
	underscoreRunRegex = regexp.MustCompile(`_+`)

	// schemeRegex matches links that already carry a scheme
	schemeRegex = regexp.MustCompile(`^[a-zA-Z]+://`)

	// bareDomainRegex matches a bare domain with an optional path
	bareDomainRegex = regexp.MustCompile(`^(www\.)?[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(/.*)?$`)
)

// Normalizer canonicalizes raw field values before they reach the store.
// Every method is a pure function of its input; nothing here errors,
// unparsable values degrade to empty or passthrough forms.
type Normalizer struct {
	// Root is the project root used to relativize snippet paths.
	Root string

	// Languages and Platforms are the alias lookup tables. They are
	// treated as read-only; swap them out in tests if needed.
	Languages map[string]string
	Platforms map[string]string
}

// NewNormalizer returns a Normalizer with the default alias tables.
func NewNormalizer(root string) *Normalizer {
	return &Normalizer{
		Root:      root,
		Languages: DefaultLanguageAliases,
		Platforms: DefaultPlatformAliases,
	}
}

// Fields returns a new map with every recognized field replaced by its
// canonical form. Unrecognized keys pass through with whitespace collapse
// only. The input map is never mutated.
func (n *Normalizer) Fields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = CollapseWhitespace(v)
	}

	if out["name"] != "" {
		out["name"] = SlugName(out["name"])
	}
	out["language"] = n.Language(out["language"])
	out["platform"] = n.Platform(out["platform"])
	out["version"] = NormalizeVersion(out["version"])
	out["tags"] = ParseTags(out["tags"]).String()
	out["link"] = n.Link(out["link"])
	out["snippet_path"] = n.SnippetPath(out["snippet_path"])
	out["created_at"] = NormalizeTimestamp(out["created_at"])
	out["updated_at"] = NormalizeTimestamp(out["updated_at"])

	return out
}

// CollapseWhitespace trims the string and collapses internal whitespace
// runs to single spaces.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SlugName reduces a raw name to the canonical [a-z0-9_-] slug:
// lowercase, spaces to underscores, disallowed characters stripped,
// underscore runs collapsed, leading/trailing underscores removed.
// An empty result falls back to FallbackName.
func SlugName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = nameStripRegex.ReplaceAllString(s, "")
	s = underscoreRunRegex.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return FallbackName
	}
	return s
}

// Language maps a language string through the alias table. On a miss the
// trimmed input is title-cased. Empty input yields empty output.
func (n *Normalizer) Language(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := n.Languages[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return titleCase(trimmed)
}

// Platform maps a platform string through the alias table. On a miss the
// input is whitespace-collapsed passthrough.
func (n *Normalizer) Platform(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := n.Platforms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return CollapseWhitespace(s)
}

// NormalizeVersion strips one leading v/V and collapses whitespace.
func NormalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if s[0] == 'v' || s[0] == 'V' {
		s = s[1:]
	}
	return CollapseWhitespace(s)
}

// Link leaves already-schemed links alone, prefixes bare domains with
// https://, and falls back to whitespace-collapsed passthrough.
func (n *Normalizer) Link(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if schemeRegex.MatchString(s) {
		return s
	}
	if bareDomainRegex.MatchString(s) {
		return "https://" + strings.TrimLeft(s, "/")
	}
	return CollapseWhitespace(s)
}

// SnippetPath cleans the path and, when it resolves inside the project
// root, rewrites it root-relative with forward slashes. Paths outside the
// root are returned cleaned, backslashes converted to forward slashes.
func (n *Normalizer) SnippetPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	cleaned := filepath.Clean(p)

	if n.Root != "" {
		absRoot, rootErr := filepath.Abs(n.Root)
		absPath, pathErr := filepath.Abs(cleaned)
		if rootErr == nil && pathErr == nil && strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
			if rel, err := filepath.Rel(absRoot, absPath); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	}

	return strings.ReplaceAll(cleaned, "\\", "/")
}

// titleCase uppercases the first letter of each alphabetic run and
// lowercases the rest, so "objective-c" becomes "Objective-C".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

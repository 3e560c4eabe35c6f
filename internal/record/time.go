package record

import (
	"strings"
	"time"
)

// timestampLayout is the canonical second-precision form, without the
// trailing Z that the stored string always carries.
const timestampLayout = "2006-01-02T15:04:05"

// canonicalLayout parses the stored form, e.g. 2025-09-25T09:12:00Z.
const canonicalLayout = "2006-01-02T15:04:05Z07:00"

// fallbackLayouts are tried, in order, when ISO parsing fails. All are
// interpreted without zone info and stamped as UTC.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02T15:04:05",
}

// isoLayouts cover the zone-less ISO shapes accepted on the first attempt.
var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeTimestamp repairs an externally supplied timestamp into the
// canonical UTC second-precision form with a trailing Z. Zone offsets are
// converted to UTC; zone-less values are taken as already UTC. Empty or
// unparsable input yields "" so the caller can substitute a default.
func NormalizeTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	base := strings.TrimSuffix(s, "Z")
	base = strings.ReplaceAll(base, " ", "T")

	if t, err := time.Parse(canonicalLayout, base); err == nil {
		return formatCanonical(t)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, base); err == nil {
			return formatCanonical(t)
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatCanonical(t)
		}
	}

	return ""
}

// NowUTC returns the current time in canonical form.
func NowUTC() string {
	return formatCanonical(time.Now())
}

// ParseCanonical parses a canonical timestamp back into a time.Time.
func ParseCanonical(s string) (time.Time, error) {
	return time.Parse(canonicalLayout, s)
}

// FormatLocal renders a canonical UTC timestamp in the given display
// location, e.g. "2025-09-25 18:00:00 CST". Display only; storage stays
// UTC. Empty input yields empty output, unparsable input passes through.
func FormatLocal(canonical string, loc *time.Location) string {
	if canonical == "" {
		return ""
	}
	t, err := ParseCanonical(canonical)
	if err != nil {
		return canonical
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02 15:04:05 MST")
}

func formatCanonical(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timestampLayout) + "Z"
}

package record

import (
	"regexp"
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "canonical form is a fixed point",
			input: "2025-09-25T09:12:00Z",
			want:  "2025-09-25T09:12:00Z",
		},
		{
			name:  "space separator",
			input: "2025-09-25 09:12:00",
			want:  "2025-09-25T09:12:00Z",
		},
		{
			name:  "slash separated",
			input: "2025/09/25 09:12:00",
			want:  "2025-09-25T09:12:00Z",
		},
		{
			name:  "zone offset converted to UTC",
			input: "2025-09-25T09:12:00+08:00",
			want:  "2025-09-25T01:12:00Z",
		},
		{
			name:  "minute precision",
			input: "2025-09-25T09:12",
			want:  "2025-09-25T09:12:00Z",
		},
		{
			name:  "date only",
			input: "2025-09-25",
			want:  "2025-09-25T00:00:00Z",
		},
		{
			name:  "unparsable degrades to empty",
			input: "next tuesday",
			want:  "",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only stays empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTimestamp(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTimestamp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNowUTC(t *testing.T) {
	shape := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

	now := NowUTC()
	if !shape.MatchString(now) {
		t.Errorf("NowUTC() = %q, not canonical second-precision UTC", now)
	}

	// Canonical output must parse back
	if _, err := ParseCanonical(now); err != nil {
		t.Errorf("ParseCanonical(NowUTC()) failed: %v", err)
	}
}

func TestFormatLocal(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	got := FormatLocal("2025-09-25T09:12:00Z", loc)
	want := "2025-09-25 17:12:00 CST"
	if got != want {
		t.Errorf("FormatLocal = %q, want %q", got, want)
	}

	if FormatLocal("", loc) != "" {
		t.Error("FormatLocal of empty should be empty")
	}

	// Unparsable passes through rather than erroring
	if FormatLocal("garbage", loc) != "garbage" {
		t.Error("FormatLocal of unparsable should pass through")
	}
}

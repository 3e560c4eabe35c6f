package record

// DefaultLanguageAliases maps lowercase language input to its canonical
// label. Unmapped values fall back to title-cased passthrough.
var DefaultLanguageAliases = map[string]string{
	"py":         "Python",
	"python":     "Python",
	"golang":     "Go",
	"go":         "Go",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"bash":       "Bash",
	"shell":      "Bash",
}

// DefaultPlatformAliases maps lowercase platform input to its canonical
// label. Unmapped values fall back to whitespace-collapsed passthrough.
var DefaultPlatformAliases = map[string]string{
	"google colaboratory": "Colab",
	"google colab":        "Colab",
	"colab":               "Colab",
	"linux":               "Linux",
	"windows":             "Windows",
	"win":                 "Windows",
	"mac":                 "macOS",
	"macos":               "macOS",
	"osx":                 "macOS",
	"docker":              "Docker",
}

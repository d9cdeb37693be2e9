// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPresetNotFound returns hints for unknown typography presets.
func ForPresetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available presets: " + strings.Join(available, ", "))
}

// ForFrontMatter returns hints for malformed front matter.
func ForFrontMatter() string {
	return formatHints([]string{
		`front matter opens and closes with a "---" line`,
		`each line inside is "key: value"`,
	})
}

// ForContentError returns hints for links, images or code blocks the
// renderer rejected.
func ForContentError() string {
	return format("use --safe to render invalid documents as escaped text")
}

// ForNoMarkdownFiles returns hints when a directory holds no Markdown.
func ForNoMarkdownFiles() string {
	return format("input files need a .md, .markdown or .mdown extension")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

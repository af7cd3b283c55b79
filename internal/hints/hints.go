// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForIDsNotFound returns a hint for input without usable ID selectors.
// inline selects the wording for the inline-style rewriter.
func ForIDsNotFound(inline bool) string {
	if inline {
		return format("inline mode needs rules like #name { fill: red } inside <style>")
	}
	return format("class mode needs selectors like #name in the <style> block")
}

// ForMatchNotFound returns a hint for a rule whose selector or block could
// not be extracted.
func ForMatchNotFound() string {
	return format("declarations may only contain letters, digits, spaces and colons")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-svgater") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForWrite returns a hint for output write failures.
func ForWrite(outputPath string) string {
	return format("check that " + filepath.Dir(outputPath) + " exists and is writable")
}

// ForNoMatches returns a hint for a glob that matched no files.
func ForNoMatches() string {
	return format("quote the pattern so the shell does not expand it, e.g. 'icons/**/*.svg'")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

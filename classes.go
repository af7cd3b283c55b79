package svgater

import (
	"fmt"
	"strings"

	"github.com/alnah/go-svgater/internal/pipeline"
)

// ToClasses turns every "#id" selector in text into ".id" and every
// id="id" attribute into class="id".
// Returns ErrIDsNotFound when text contains no ID selector.
func ToClasses(text string) (string, error) {
	out, _, err := rewriteClasses(text)
	return out, err
}

// rewriteClasses is ToClasses that also returns the identifiers it found.
func rewriteClasses(text string) (string, []string, error) {
	matches := pipeline.FindSelectors(text)
	if len(matches) == 0 {
		return "", nil, ErrIDsNotFound
	}

	// All offsets come from the original text. Each edit swaps one byte for
	// one byte, so they stay valid across the loop.
	ids := make([]string, 0, len(matches))
	var err error
	for _, m := range matches {
		ids = append(ids, m.ID)
		hash := pipeline.Span{Start: m.Start, End: m.Start + 1}
		text, err = pipeline.ReplaceAt(text, hash, ".")
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrRangeConversion, err)
		}
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		text = strings.ReplaceAll(text, `id="`+id+`"`, `class="`+id+`"`)
	}

	return text, ids, nil
}

package svgater

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-svgater/internal/pipeline"
)

// ToInlineStyles removes every "#id { declarations }" rule from text and
// adds style="declarations" after each matching id="id" attribute.
//
// Errors: ErrIDsNotFound when text holds no such rule, a *MatchNotFoundError
// when a rule's selector or block cannot be extracted, ErrRangeConversion
// when a rule span no longer fits the text. Nothing is returned on error.
func ToInlineStyles(text string) (string, error) {
	out, _, err := rewriteInline(text)
	return out, err
}

// rewriteInline is ToInlineStyles that also returns the extracted records
// in source order.
func rewriteInline(text string) (string, []StyleRecord, error) {
	records, err := extractStyleRecords(text)
	if err != nil {
		return "", nil, err
	}

	// Delete from the last rule to the first: a deletion only shifts bytes
	// after it, so the spans still pending keep their original offsets.
	spans := make([]pipeline.Span, len(records))
	for i, r := range records {
		spans[i] = r.Span
	}
	slices.Reverse(spans)
	text, err = pipeline.DeleteSpans(text, spans)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrRangeConversion, err)
	}

	for _, r := range records {
		attr := `id="` + r.ID + `"`
		text = strings.ReplaceAll(text, attr, attr+` style="`+r.Declarations+`"`)
	}

	return text, records, nil
}

// extractStyleRecords finds every full ID rule in text, left to right.
func extractStyleRecords(text string) ([]StyleRecord, error) {
	spans := pipeline.FindRules(text)
	if len(spans) == 0 {
		return nil, ErrIDsNotFound
	}

	records := make([]StyleRecord, 0, len(spans))
	for _, span := range spans {
		rule := span.In(text)

		sel, ok := pipeline.FindSelector(rule)
		if !ok {
			return nil, &MatchNotFoundError{Location: LocationID, Rule: rule}
		}

		block, ok := pipeline.FindBlock(rule)
		if !ok {
			return nil, &MatchNotFoundError{Location: LocationStyle, Rule: rule}
		}

		records = append(records, StyleRecord{
			ID:           sel.ID,
			Declarations: block[1 : len(block)-1],
			Span:         span,
		})
	}
	return records, nil
}

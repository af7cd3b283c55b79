package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSpanOutOfRange is returned when a span cannot be resolved against the
// current state of a text.
var ErrSpanOutOfRange = errors.New("span out of range")

// DeleteSpan removes the bytes covered by s from text.
func DeleteSpan(text string, s Span) (string, error) {
	if !s.Fits(len(text)) {
		return "", fmt.Errorf("%w: [%d,%d) in %d bytes", ErrSpanOutOfRange, s.Start, s.End, len(text))
	}
	return text[:s.Start] + text[s.End:], nil
}

// DeleteSpans removes every span from text. Spans must not overlap and are
// applied in the order given, so callers pass them sorted by descending
// Start.
func DeleteSpans(text string, spans []Span) (string, error) {
	var err error
	for _, s := range spans {
		text, err = DeleteSpan(text, s)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// ReplaceAt replaces the bytes covered by s with repl.
// When len(repl) == s.Len() offsets past s are unchanged.
func ReplaceAt(text string, s Span, repl string) (string, error) {
	if !s.Fits(len(text)) {
		return "", fmt.Errorf("%w: [%d,%d) in %d bytes", ErrSpanOutOfRange, s.Start, s.End, len(text))
	}
	var b strings.Builder
	b.Grow(len(text) - s.Len() + len(repl))
	b.WriteString(text[:s.Start])
	b.WriteString(repl)
	b.WriteString(text[s.End:])
	return b.String(), nil
}

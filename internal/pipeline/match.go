package pipeline

import "regexp"

// Search patterns.
//
// Word characters are Unicode letters, numbers, marks and "_", so an
// identifier such as "café" is matched whole. RE2's \w is ASCII only.
//
// selectorPattern captures the identifier in group 1 and the trailing
// non-space character in group 2. The trailing character is optional:
// requiring it would make "#foo {" yield the identifier "fo".
// rulePattern matches a whole "#id { declarations }" rule, and
// blockPattern the "{ declarations }" part of it.
var (
	selectorPattern = regexp.MustCompile(`#([\p{L}\p{N}\p{M}_]+)(\S?)`)
	rulePattern     = regexp.MustCompile(`#[\p{L}\p{N}\p{M}_\s]+\{[\p{L}\p{N}\p{M}_\s:]*\}`)
	blockPattern    = regexp.MustCompile(`\{[\p{L}\p{N}\p{M}_\s:]*\}`)
)

// Span is a half-open byte range [Start, End) in a text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// In returns the substring of text covered by the span.
// The caller must ensure the span fits the text (see Fits).
func (s Span) In(text string) string {
	return text[s.Start:s.End]
}

// Fits reports whether the span can be resolved against a text of length n.
func (s Span) Fits(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// SelectorMatch is one "#identifier" occurrence.
// Span covers the hash, the identifier and the trailing byte if any.
type SelectorMatch struct {
	Span
	ID string
}

// FindSelectors returns all non-overlapping ID selector matches in text,
// left to right.
func FindSelectors(text string) []SelectorMatch {
	locs := selectorPattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]SelectorMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, SelectorMatch{
			Span: Span{Start: loc[0], End: loc[1]},
			ID:   text[loc[2]:loc[3]],
		})
	}
	return matches
}

// FindSelector returns the first ID selector match in text.
func FindSelector(text string) (SelectorMatch, bool) {
	loc := selectorPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return SelectorMatch{}, false
	}
	return SelectorMatch{
		Span: Span{Start: loc[0], End: loc[1]},
		ID:   text[loc[2]:loc[3]],
	}, true
}

// FindRules returns the spans of all full "#id { declarations }" rules
// in text, left to right.
func FindRules(text string) []Span {
	locs := rulePattern.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	return spans
}

// FindBlock returns the first "{ ... }" declaration block in text,
// braces included.
func FindBlock(text string) (string, bool) {
	loc := blockPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// Package pipeline holds the text stages shared by the SVG rewriters:
// locating ID selectors and ID rules by pattern, and editing the document
// at byte offsets.
//
// Offsets returned by the search functions refer to the text they were
// computed on. Callers that delete more than one span from the same text
// must apply the deletions from the highest offset to the lowest so that
// spans not yet deleted keep their original offsets.
package pipeline

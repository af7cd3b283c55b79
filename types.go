package svgater

import (
	"fmt"
	"strings"

	"github.com/alnah/go-svgater/internal/pipeline"
)

// Mode selects the rewrite applied to a document.
type Mode string

// Rewrite modes.
const (
	ModeClass  Mode = "class"
	ModeInline Mode = "inline"
)

// ParseMode converts a mode name to a Mode. Matching is case-insensitive
// and the empty string selects ModeClass.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeClass):
		return ModeClass, nil
	case string(ModeInline):
		return ModeInline, nil
	default:
		return "", fmt.Errorf("%w: %q (must be class or inline)", ErrUnknownMode, s)
	}
}

// StyleRecord is one "#id { declarations }" rule found by ToInlineStyles.
// Span covers the whole rule in the original text; Declarations excludes
// the braces.
type StyleRecord struct {
	ID           string
	Declarations string
	Span         pipeline.Span
}

// Result describes one converted file.
type Result struct {
	InputPath  string
	OutputPath string
	Mode       Mode
	IDs        []string // identifiers in source order, duplicates kept
}

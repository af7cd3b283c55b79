package svgater

import (
	"errors"
	"fmt"

	"github.com/alnah/go-svgater/internal/fileutil"
)

// Sentinel errors for rewrite operations.
var (
	ErrIDsNotFound     = errors.New("could not convert IDs - no IDs found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrRangeConversion = errors.New("could not resolve rule range in SVG text")
	ErrUnknownMode     = errors.New("unknown rewrite mode")
)

// File errors, re-exported for library callers.
var (
	ErrRead               = fileutil.ErrRead
	ErrWrite              = fileutil.ErrWrite
	ErrEncoding           = fileutil.ErrEncoding
	ErrFileNameDerivation = fileutil.ErrFileNameDerivation
	ErrOutputPath         = fileutil.ErrOutputPath
)

// Locations reported by MatchNotFoundError.
const (
	LocationID    = "id matching"
	LocationStyle = "style matching"
)

// MatchNotFoundError reports a sub-pattern missing from an already matched
// rule. It matches ErrMatchNotFound with errors.Is.
type MatchNotFoundError struct {
	Location string // LocationID or LocationStyle
	Rule     string // text of the rule being extracted
}

func (e *MatchNotFoundError) Error() string {
	return fmt.Sprintf("match not found in %s: %q", e.Location, e.Rule)
}

// Is reports whether target is ErrMatchNotFound.
func (e *MatchNotFoundError) Is(target error) bool {
	return target == ErrMatchNotFound
}

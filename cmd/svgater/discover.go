package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-svgater/internal/fileutil"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrTooManyArgs = errors.New("expected a single file or glob argument")
	ErrNoMatches   = errors.New("no files match pattern")
	ErrBadPattern  = errors.New("invalid glob pattern")
)

// isGlob reports whether arg uses glob syntax. Plain paths, and existing
// files whose names contain glob characters such as "logo[1].svg", are
// passed through untouched so a missing file surfaces as a read error.
func isGlob(arg string) bool {
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// discoverFiles expands the positional arguments to the list of files to
// rewrite, sorted for a stable processing order.
func discoverFiles(args []string) ([]string, error) {
	switch len(args) {
	case 0:
		return nil, ErrNoInput
	case 1:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}

	arg := args[0]
	if !isGlob(arg) || fileutil.FileExists(arg) {
		return []string{arg}, nil
	}

	if !doublestar.ValidatePathPattern(arg) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, arg)
	}

	matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, arg, err)
	}

	files := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, arg)
	}

	slices.Sort(files)
	return files, nil
}

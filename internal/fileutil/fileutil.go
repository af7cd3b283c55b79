// Package fileutil reads and writes SVG documents and derives output paths.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrRead               = errors.New("error reading file")
	ErrWrite              = errors.New("error writing new SVG to file")
	ErrEncoding           = errors.New("could not convert SVG text to UTF-8 bytes")
	ErrFileNameDerivation = errors.New("error creating new file name")
	ErrOutputPath         = errors.New("could not create new SVG file at path")
)

// DefaultSuffix is inserted before the ".svg" extension of output files.
const DefaultSuffix = "-updated"

// svgExt is matched case-sensitively, as written by most editors.
const svgExt = ".svg"

// filePermissions: rw-r--r--
const filePermissions = 0o644

// ReadText returns the content of path as UTF-8 text.
// Input that is not valid UTF-8 is a read failure; the error matches both
// ErrRead and ErrEncoding.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %w: %s is not valid UTF-8", ErrRead, ErrEncoding, path)
	}
	return string(data), nil
}

// WriteText writes text to path, replacing any existing file.
func WriteText(path, text string) error {
	if !utf8.ValidString(text) {
		return ErrEncoding
	}
	if err := os.WriteFile(path, []byte(text), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// UpdatedPath derives the output path for an input SVG path.
// The trailing ".svg" of the file name becomes suffix+".svg"; the directory
// part is kept as is. An empty suffix falls back to DefaultSuffix.
//
// Examples:
//   - "/tmp/icon.svg" -> "/tmp/icon-updated.svg"
//   - "icons/logo.svg" -> "icons/logo-updated.svg"
//   - "art.svg.svg" -> "art.svg-updated.svg"
func UpdatedPath(path, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if strings.ContainsAny(suffix, "/\\\x00") {
		return "", fmt.Errorf("%w: suffix %q contains a path separator", ErrFileNameDerivation, suffix)
	}

	dir, name := filepath.Split(path)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: no file name in %q", ErrFileNameDerivation, path)
	}

	base := strings.TrimSuffix(name, svgExt)
	if base == "" {
		return "", fmt.Errorf("%w: %q has no base name", ErrFileNameDerivation, path)
	}

	out := dir + base + suffix + svgExt
	if strings.ContainsRune(out, '\x00') {
		return "", fmt.Errorf("%w: %q", ErrOutputPath, out)
	}
	return out, nil
}

// HasSVGExtension reports whether path names an .svg file.
func HasSVGExtension(path string) bool {
	return strings.HasSuffix(path, svgExt)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

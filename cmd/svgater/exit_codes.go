package main

import (
	"errors"
	"os"

	"github.com/alnah/go-svgater"
	"github.com/alnah/go-svgater/internal/config"
)

// Exit codes for the svgater CLI.
const (
	ExitSuccess = 0 // All files rewritten
	ExitUsage   = 1 // Missing argument, invalid flags or config
	ExitRewrite = 2 // Rewrite failed
	ExitIO      = 3 // Reading or writing a file failed
	ExitGeneral = 1 // Unexpected error, including interruption
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rewrite errors (exit 2)
	if errors.Is(err, svgater.ErrIDsNotFound) ||
		errors.Is(err, svgater.ErrMatchNotFound) ||
		errors.Is(err, svgater.ErrRangeConversion) {
		return ExitRewrite
	}

	// I/O errors (exit 3)
	if errors.Is(err, svgater.ErrRead) ||
		errors.Is(err, svgater.ErrWrite) ||
		errors.Is(err, svgater.ErrEncoding) ||
		errors.Is(err, svgater.ErrFileNameDerivation) ||
		errors.Is(err, svgater.ErrOutputPath) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 1)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrNoMatches) ||
		errors.Is(err, ErrBadPattern) ||
		errors.Is(err, svgater.ErrUnknownMode) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}

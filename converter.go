package svgater

import (
	"context"
	"fmt"

	"github.com/alnah/go-svgater/internal/fileutil"
)

// Converter runs load, rewrite and write for SVG files.
// Create with NewConverter and reuse it; it holds no per-file state.
type Converter struct {
	mode   Mode
	suffix string

	// File I/O, replaced in tests.
	readText  func(path string) (string, error)
	writeText func(path, text string) error
}

// Option configures a Converter.
type Option func(*Converter)

// WithMode selects the rewrite. The default is ModeClass.
func WithMode(m Mode) Option {
	return func(c *Converter) {
		c.mode = m
	}
}

// WithSuffix sets the text inserted before ".svg" in output file names.
// The default is "-updated".
func WithSuffix(suffix string) Option {
	return func(c *Converter) {
		c.suffix = suffix
	}
}

// NewConverter creates a Converter with default configuration.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		mode:      ModeClass,
		suffix:    fileutil.DefaultSuffix,
		readText:  fileutil.ReadText,
		writeText: fileutil.WriteText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the configured rewrite mode.
func (c *Converter) Mode() Mode {
	return c.mode
}

// Rewrite applies the configured mode to text and returns the new text and
// the identifiers it acted on.
func (c *Converter) Rewrite(text string) (string, []string, error) {
	return Rewrite(text, c.mode)
}

// ConvertFile reads path, rewrites it and writes the result to the derived
// output path. No file is written when any earlier stage fails.
// The context is checked between stages.
func (c *Converter) ConvertFile(ctx context.Context, path string) (Result, error) {
	result := Result{InputPath: path, Mode: c.mode}

	text, err := c.readText(path)
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	updated, ids, err := c.Rewrite(text)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	result.IDs = ids
	if err := ctx.Err(); err != nil {
		return result, err
	}

	outputPath, err := fileutil.UpdatedPath(path, c.suffix)
	if err != nil {
		return result, err
	}
	result.OutputPath = outputPath

	if err := c.writeText(outputPath, updated); err != nil {
		return result, err
	}
	return result, nil
}

// Rewrite applies mode to text and returns the new text and the identifiers
// it acted on, in source order.
func Rewrite(text string, mode Mode) (string, []string, error) {
	switch mode {
	case ModeClass:
		return rewriteClasses(text)
	case ModeInline:
		out, records, err := rewriteInline(text)
		if err != nil {
			return "", nil, err
		}
		ids := make([]string, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.ID)
		}
		return out, ids, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

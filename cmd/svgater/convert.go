package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-svgater"
	"github.com/alnah/go-svgater/internal/config"
	"github.com/alnah/go-svgater/internal/fileutil"
	"github.com/alnah/go-svgater/internal/hints"
	"github.com/alnah/go-svgater/internal/yamlutil"
)

// FileConverter is the conversion service used by the CLI.
type FileConverter interface {
	ConvertFile(ctx context.Context, path string) (svgater.Result, error)
}

// Compile-time interface implementation check.
var _ FileConverter = (*svgater.Converter)(nil)

// ConversionResult holds the outcome of a single file.
type ConversionResult struct {
	svgater.Result
	Err      error
	Duration time.Duration
}

// run resolves configuration, discovers input files and converts them.
// The returned error decides the exit code.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) {
			hint = hints.ForConfigNotFound(config.SearchPaths(configName(flags, envCfg)))
		}
		return reportError(env, err, hint)
	}

	mode, err := svgater.ParseMode(cfg.Mode)
	if err != nil {
		return reportError(env, err, "")
	}

	if flags.showConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return reportError(env, err, "")
		}
		fmt.Fprint(env.Stdout, string(out))
		return nil
	}

	files, err := discoverFiles(positional)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoInput):
			printUsage(env.Stdout)
			return err
		case errors.Is(err, ErrNoMatches):
			return reportError(env, err, hints.ForNoMatches())
		}
		return reportError(env, err, "")
	}

	if !cfg.Quiet {
		for _, f := range files {
			if !fileutil.HasSVGExtension(f) {
				fmt.Fprintf(env.Stderr, "warning: %s has no .svg extension\n", f)
			}
		}
	}

	conv := svgater.NewConverter(svgater.WithMode(mode), svgater.WithSuffix(cfg.Suffix))
	results := convertFiles(ctx, conv, files, env)
	return printResults(results, cfg.Quiet, cfg.Verbose, env)
}

// resolveConfig builds the effective configuration.
// Priority: flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if name := configName(flags, envCfg); name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configName returns the config file requested by flag or environment.
func configName(flags *cliFlags, envCfg *envConfig) string {
	if flags.config != "" {
		return flags.config
	}
	return envCfg.ConfigPath
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.mode != "" {
		cfg.Mode = strings.ToLower(flags.mode)
	}
	if flags.suffix != "" {
		cfg.Suffix = flags.suffix
	}
	if flags.quiet {
		cfg.Quiet = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}
}

// convertFiles converts files one after another. A failed file does not
// stop the batch; a canceled context does.
func convertFiles(ctx context.Context, conv FileConverter, files []string, env *Environment) []ConversionResult {
	results := make([]ConversionResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			results = append(results, ConversionResult{Result: svgater.Result{InputPath: path}, Err: err})
			break
		}

		start := env.Now()
		res, err := conv.ConvertFile(ctx, path)
		results = append(results, ConversionResult{
			Result:   res,
			Err:      err,
			Duration: env.Now().Sub(start),
		})
	}
	return results
}

// printResults reports each result and returns the first failure, if any.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) error {
	var firstErr error
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "%v%s\n", r.Err, hintFor(r))
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stderr, "Found IDs: %d (%s)\n", len(r.IDs), strings.Join(r.IDs, ", "))
			fmt.Fprintf(env.Stderr, "%s -> %s [%s] (%v)\n", r.InputPath, r.OutputPath, r.Mode, r.Duration.Round(time.Millisecond))
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "SVG updated at: %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return firstErr
}

// reportError prints err followed by hint and returns err unchanged.
func reportError(env *Environment, err error, hint string) error {
	fmt.Fprintf(env.Stderr, "%v%s\n", err, hint)
	return err
}

// hintFor returns the hint matching a failed conversion.
func hintFor(r ConversionResult) string {
	switch {
	case errors.Is(r.Err, svgater.ErrIDsNotFound):
		return hints.ForIDsNotFound(r.Mode == svgater.ModeInline)
	case errors.Is(r.Err, svgater.ErrMatchNotFound):
		return hints.ForMatchNotFound()
	case errors.Is(r.Err, svgater.ErrWrite):
		return hints.ForWrite(r.OutputPath)
	}
	return ""
}

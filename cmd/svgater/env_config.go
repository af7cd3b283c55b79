package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-svgater/internal/config"
)

// envPrefix marks the environment variables read by svgater.
const envPrefix = "SVGATER_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // SVGATER_CONFIG: config file name or path
	Mode       string // SVGATER_MODE: class or inline
	Suffix     string // SVGATER_SUFFIX: output file name suffix
}

// knownEnvVars lists valid SVGATER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVGATER_CONFIG": true,
	"SVGATER_MODE":   true,
	"SVGATER_SUFFIX": true,
}

// loadEnvConfig reads the recognized SVGATER_* values.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("SVGATER_CONFIG"),
		Mode:       getenv("SVGATER_MODE"),
		Suffix:     getenv("SVGATER_SUFFIX"),
	}
}

// warnUnknownEnvVars prints a warning for each unrecognized SVGATER_* variable.
// Helps catch typos like SVGATER_MOD.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Flags are applied afterwards by mergeFlags, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = strings.ToLower(env.Mode)
	}
	if env.Suffix != "" {
		cfg.Suffix = env.Suffix
	}
}

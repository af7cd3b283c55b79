package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svgater"
	"github.com/alnah/go-svgater/internal/fileutil"
	"github.com/alnah/go-svgater/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Rewrite modes accepted in config files. Validation goes through
// svgater.ParseMode so both lists stay the same.
const (
	ModeClass  = string(svgater.ModeClass)
	ModeInline = string(svgater.ModeInline)
)

// MaxSuffixLength bounds the output file name suffix.
const MaxSuffixLength = 64

// appDir is the directory under os.UserConfigDir searched for named configs.
const appDir = "go-svgater"

// Config holds the settings a run can take from a YAML file.
type Config struct {
	Mode    string `yaml:"mode"`    // "class" or "inline" (default: "class")
	Suffix  string `yaml:"suffix"`  // inserted before ".svg" (default: "-updated")
	Quiet   bool   `yaml:"quiet"`   // suppress the success line
	Verbose bool   `yaml:"verbose"` // report found IDs and output paths
}

// Validate checks mode and suffix.
func (c *Config) Validate() error {
	if _, err := svgater.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if len(c.Suffix) > MaxSuffixLength {
		return fmt.Errorf("%w: suffix (%d chars, max %d)", ErrInvalidValue, len(c.Suffix), MaxSuffixLength)
	}
	if strings.ContainsAny(c.Suffix, "/\\\x00") {
		return fmt.Errorf("%w: suffix %q contains a path separator", ErrInvalidValue, c.Suffix)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Mode:   ModeClass,
		Suffix: fileutil.DefaultSuffix,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Empty fields in the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeClass
	}
	if cfg.Suffix == "" {
		cfg.Suffix = fileutil.DefaultSuffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

package chemfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pandoc-chemfig/internal/mdinline"
	"github.com/alnah/go-pandoc-chemfig/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigLabel     = errors.New("invalid label markdown in config")
)

// Config declares abbreviation defaults for non-typesetting caption labels.
// Values are one-line markdown, so "*Sch.*" yields an emphasized label.
// Document fig-abbr metadata always wins over the config.
type Config struct {
	// Abbreviations maps a figure class to its caption label.
	Abbreviations map[string]string `yaml:"abbreviations"`

	// Suffix is the fragment placed between the number and the caption.
	Suffix string `yaml:"suffix"`
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// Defaults parses the configured markdown fragments into Abbreviations ready
// for WithDefaults.
func (c *Config) Defaults() (Abbreviations, error) {
	abbrs := Abbreviations{Labels: make(map[string][]any)}
	for class, label := range c.Abbreviations {
		inlines, err := mdinline.Parse(label)
		if err != nil {
			return Abbreviations{}, fmt.Errorf("%w: class %q: %v", ErrConfigLabel, class, err)
		}
		abbrs.Labels[class] = inlines
	}
	if c.Suffix != "" {
		inlines, err := mdinline.Parse(c.Suffix)
		if err != nil {
			return Abbreviations{}, fmt.Errorf("%w: suffix: %v", ErrConfigLabel, err)
		}
		abbrs.Suffix = inlines
	}
	return abbrs, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/pandoc-chemfig/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "pandoc-chemfig", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Package config loads swap-sentinel configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (SWAP_SENTINEL_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .swap-sentinel.yaml in current directory
//  2. ~/.config/swap-sentinel/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all swap-sentinel configuration.
type Config struct {
	// Strategy settings
	Tmux         bool     `yaml:"tmux"`          // Use the tmux strategy when attached to a tmux session
	EditorTitles []string `yaml:"editor_titles"` // Title substrings that mark an editor window
	TerminalApp  string   `yaml:"terminal_app"`  // Override the AppleScript application name (default: from TERM_PROGRAM)

	// Marker settings
	MarkerExtensions []string `yaml:"marker_extensions"` // Swap-marker extensions, e.g. [".swp", ".swo"]

	// Timeout for each strategy's external-command pipeline
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "500ms"

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs, e.g. "Authorization=Basic abc123"

	// Parsed duration (not from YAML, set after loading)
	TimeoutDuration time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`

	// tmuxSet tracks whether the file set the tmux key explicitly,
	// so the merge can tell "tmux: false" apart from an absent key.
	tmuxSet bool
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Tmux:             false,
		EditorTitles:     []string{"VIM"},
		MarkerExtensions: []string{".swp", ".swo", ".swn"},
		Timeout:          "500ms",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		fileCfg, err := parseFile(data)
		if err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	// Parse durations
	var err error
	cfg.TimeoutDuration, err = time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
	}
	if cfg.TimeoutDuration <= 0 {
		return nil, fmt.Errorf("invalid timeout %q: must be positive", cfg.Timeout)
	}

	return cfg, nil
}

// parseFile unmarshals a YAML config document, tracking whether the
// tmux key was present.
func parseFile(data []byte) (*Config, error) {
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, err
	}

	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err == nil {
		_, fileCfg.tmuxSet = keys["tmux"]
	}

	return &fileCfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".swap-sentinel.yaml"); err == nil {
		return ".swap-sentinel.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "swap-sentinel", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.tmuxSet {
		cfg.Tmux = file.Tmux
	}
	if len(file.EditorTitles) > 0 {
		cfg.EditorTitles = file.EditorTitles
	}
	if file.TerminalApp != "" {
		cfg.TerminalApp = file.TerminalApp
	}
	if len(file.MarkerExtensions) > 0 {
		cfg.MarkerExtensions = file.MarkerExtensions
	}
	if file.Timeout != "" {
		cfg.Timeout = file.Timeout
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("SWAP_SENTINEL_TMUX"); v != "" {
		cfg.Tmux = v == "true" || v == "1"
	}
	if v := os.Getenv("SWAP_SENTINEL_EDITOR_TITLES"); v != "" {
		cfg.EditorTitles = splitList(v)
	}
	if v := os.Getenv("SWAP_SENTINEL_TERMINAL_APP"); v != "" {
		cfg.TerminalApp = v
	}
	if v := os.Getenv("SWAP_SENTINEL_MARKER_EXTENSIONS"); v != "" {
		cfg.MarkerExtensions = splitList(v)
	}
	if v := os.Getenv("SWAP_SENTINEL_TIMEOUT"); v != "" {
		cfg.Timeout = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// splitList parses a comma-separated env value into a list, dropping
// empty entries.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/dirsh/internal/util"
)

// Log verbosity as passed on the CLI or in config files, 1 (error) to 5 (trace)
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.WarnLevel

	// DefaultUsername is empty so the shell asks for one at startup
	DefaultUsername = ""

	DefaultPromptSuffix = "> "

	DefaultUsernamePrompt = "Please enter username: "

	DefaultNodesFile = ""
)

// Config contains runtime configuration values for the shell.
type Config struct {
	LogLvl         util.LogLevel // Internal log level (Default warn)
	Username       string        // Root directory name; prompted for when empty (Default "")
	PromptSuffix   string        // Printed after the cursor's full path (Default "> ")
	UsernamePrompt string        // Printed when asking for a username (Default "Please enter username: ")
	NodesFile      string        // Optional seed nodes file loaded at startup (Default "")
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace) and is clamped.
type ConfigOverride struct {
	LogLvl         *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Username       *string `yaml:"username,omitempty" json:"username,omitempty"`
	PromptSuffix   *string `yaml:"prompt_suffix,omitempty" json:"prompt_suffix,omitempty"`
	UsernamePrompt *string `yaml:"username_prompt,omitempty" json:"username_prompt,omitempty"`
	NodesFile      *string `yaml:"nodes_file,omitempty" json:"nodes_file,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:         DefaultLogLvl,
		Username:       DefaultUsername,
		PromptSuffix:   DefaultPromptSuffix,
		UsernamePrompt: DefaultUsernamePrompt,
		NodesFile:      DefaultNodesFile,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.Username != nil {
		c.Username = *override.Username
	}
	if override.PromptSuffix != nil {
		c.PromptSuffix = *override.PromptSuffix
	}
	if override.UsernamePrompt != nil {
		c.UsernamePrompt = *override.UsernamePrompt
	}
	if override.NodesFile != nil {
		c.NodesFile = *override.NodesFile
	}
}

// VerboseToLogLevel maps a 1 (error) to 5 (trace) verbosity onto [util.LogLevel],
// clamping out of range values.
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}

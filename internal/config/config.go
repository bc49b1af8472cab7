package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the file written by `varlint init-config`
const DefaultFileName = ".varlint.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"

	ModeSubstring = "substring"
	ModeToken     = "token"
)

// Config represents the varlint configuration file
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Ignores  IgnoresConfig  `yaml:"ignores"`
}

// OutputConfig controls how the report is rendered
type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// AnalysisConfig controls the usage pass
type AnalysisConfig struct {
	Mode         string `yaml:"mode"`           // substring or token
	FailOnIssues bool   `yaml:"fail_on_issues"` // exit 1 when unused variables are reported
}

// IgnoresConfig contains ignore rules for variables
type IgnoresConfig struct {
	Variables []string `yaml:"variables"` // Variables never reported as unused
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output:   OutputConfig{Format: FormatText},
		Analysis: AnalysisConfig{Mode: ModeSubstring},
		Ignores:  IgnoresConfig{Variables: []string{}},
	}
}

// Load reads the configuration file at path. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", c.Output.Format, FormatText, FormatJSON)
	}

	switch c.Analysis.Mode {
	case ModeSubstring, ModeToken:
	default:
		return fmt.Errorf("unknown analysis mode %q (expected %s or %s)", c.Analysis.Mode, ModeSubstring, ModeToken)
	}

	return nil
}

// ShouldIgnore checks if a variable should never be reported as unused
func (c *Config) ShouldIgnore(varName string) bool {
	for _, ignored := range c.Ignores.Variables {
		if ignored == varName {
			return true
		}
	}
	return false
}

// Template is the commented configuration written by `varlint init-config`
const Template = `# .varlint.yaml
# Configuration file for varlint. Only read when passed with --config.

output:
  # text prints the framed analysis report, json prints a machine-readable document
  format: text

analysis:
  # substring: a name counts as used wherever it appears as a substring of a line
  # token: only identifier tokens count (comments and strings are skipped)
  mode: substring
  # exit with status 1 when unused variables are reported
  fail_on_issues: false

ignores:
  # Variables that are never reported as unused
  variables:
    # - unused_but_required
`

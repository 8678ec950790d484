// Package config provides pipeline configuration management,
// including reading and writing the buildway configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"buildway.dev/buildway/internal/branchpath"
)

// FileName is the configuration file expected at the repository root.
const FileName = ".buildway.yml"

// Step is one external tool invocation of the pipeline. The command line may
// reference derivation properties such as {version} or {branchVersionFolder}.
type Step struct {
	Name       string `yaml:"name"`
	Command    string `yaml:"command"`
	DeployOnly bool   `yaml:"deployOnly,omitempty"`
}

// Config represents the pipeline configuration
type Config struct {
	Build             int               `yaml:"build"`
	Major             int               `yaml:"major"`
	MaxSegments       int               `yaml:"maxSegments"`
	ForbiddenSegments []string          `yaml:"forbiddenSegments"`
	Channels          map[string]string `yaml:"channels"`
	DefaultChannel    string            `yaml:"defaultChannel"`
	OutputRoot        string            `yaml:"outputRoot"`
	Steps             []Step            `yaml:"steps,omitempty"`
}

// Default returns the configuration used when no file exists. The channel
// table follows the usual gitflow roots.
func Default() *Config {
	return &Config{
		Build:             0,
		Major:             1,
		MaxSegments:       2,
		ForbiddenSegments: []string{branchpath.LatestAlias},
		Channels: map[string]string{
			"feature": "development",
			"develop": "quality",
			"bugfix":  "quality",
			"release": "staging",
			"main":    "production",
			"master":  "production",
			"hotfix":  "production",
		},
		DefaultChannel: "{nodeploy}",
		OutputRoot:     "artifacts",
	}
}

// Load reads the configuration from the repository root. A missing file
// yields the defaults; a present file is merged over them so partial configs
// stay valid.
func Load(repoRoot string) (*Config, error) {
	configPath := filepath.Join(repoRoot, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Default(), nil
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if config.MaxSegments <= 0 {
		return nil, fmt.Errorf("%s: maxSegments must be positive, got %d", FileName, config.MaxSegments)
	}
	if config.DefaultChannel == "" {
		return nil, fmt.Errorf("%s: defaultChannel must not be empty", FileName)
	}

	return config, nil
}

// Save writes the configuration to the repository root
func (c *Config) Save(repoRoot string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(repoRoot, FileName), data, 0600)
}

// Exists reports whether a configuration file is present at the repo root
func Exists(repoRoot string) bool {
	_, err := os.Stat(filepath.Join(repoRoot, FileName))
	return err == nil
}

// DeriveOptions returns the per-call options the path derivation core takes.
// Defaults are passed explicitly rather than read ambiently by the core.
func (c *Config) DeriveOptions() branchpath.DeriveOptions {
	return branchpath.DeriveOptions{
		MaxSegments:       c.MaxSegments,
		ForbiddenSegments: c.ForbiddenSegments,
		ChannelTable:      c.Channels,
		DefaultChannel:    c.DefaultChannel,
	}
}

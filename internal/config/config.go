// Package config loads the optional YAML configuration for the scanner and
// turns its policy sections into a validated policy engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hariharan346/security-guardian/internal/policy"
	"github.com/hariharan346/security-guardian/internal/types"
	"gopkg.in/yaml.v3"
)

// PatternConfig declares an extra detection signature.
type PatternConfig struct {
	Name     string `yaml:"name"`
	Regex    string `yaml:"regex"`
	Severity string `yaml:"severity"`
}

// FileConfig is the on-disk YAML shape. Pointer fields distinguish "unset"
// from zero values so CLI flags can take precedence.
type FileConfig struct {
	Exclude         []string          `yaml:"exclude"`
	Include         *string           `yaml:"include"`
	Threads         *int              `yaml:"threads"`
	NoColor         *bool             `yaml:"no_color"`
	Validate        *bool             `yaml:"validate"`
	NoCache         *bool             `yaml:"no_cache"`
	Patterns        []PatternConfig   `yaml:"patterns"`
	ContextKeywords []string          `yaml:"context_keywords"`
	Actions         map[string]string `yaml:"actions"` // severity name -> action name
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".guardian.yml", ".guardian.yaml", "guardian.yml", "guardian.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "security-guardian", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// BuildPolicy constructs the policy engine: built-in defaults plus the
// config's extra patterns, context keywords and action overrides. Any invalid
// regex, unknown severity/action name, or resulting gap in the action table
// is a configuration defect and fails here, before the scan starts.
func (fc FileConfig) BuildPolicy() (*policy.Engine, error) {
	eng := policy.Default()
	for _, pc := range fc.Patterns {
		sev, err := types.ParseSeverity(pc.Severity)
		if err != nil {
			return nil, fmt.Errorf("config pattern %q: %w", pc.Name, err)
		}
		if err := eng.AddPattern(pc.Name, pc.Regex, sev); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	eng.AddContextKeywords(fc.ContextKeywords...)
	for sevName, actName := range fc.Actions {
		sev, err := types.ParseSeverity(sevName)
		if err != nil {
			return nil, fmt.Errorf("config actions: %w", err)
		}
		act, err := types.ParseAction(actName)
		if err != nil {
			return nil, fmt.Errorf("config actions: %w", err)
		}
		eng.OverrideAction(sev, act)
	}
	if err := eng.Validate(); err != nil {
		return nil, err
	}
	return eng, nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for vulnticket.
// Pointer fields distinguish "not set" from zero values so CLI flags can
// take precedence over local config, and local over global.
type FileConfig struct {
	// Applications maps hostnames to application names. Entries here are
	// merged over (and win against) nothing: there is no built-in map.
	Applications map[string]string `yaml:"applications"`

	// Environments overrides the built-in code -> canonical label map.
	Environments map[string]string `yaml:"environments"`

	// SeverityOrder overrides the built-in VPR -> rank map.
	SeverityOrder map[string]int `yaml:"severity_order"`

	Project   *string `yaml:"project"`    // default Jira project key
	IssueType *string `yaml:"issue_type"` // default Jira issue type
	Sheet     *string `yaml:"sheet"`      // worksheet to read (default: first)
	NoColor   *bool   `yaml:"no_color"`
	NoAudit   *bool   `yaml:"no_audit"`
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

// LoadLocal searches for a config file in the given directory.
// It supports .vulnticket.yml/.yaml and vulnticket.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".vulnticket.yml", ".vulnticket.yaml", "vulnticket.yml", "vulnticket.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
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
	p := filepath.Join(base, "vulnticket", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Merge folds b into a: map entries from b win on key collision, scalar
// pointers from b replace unset ones in a.
func Merge(a, b FileConfig) FileConfig {
	if a.Applications == nil {
		a.Applications = map[string]string{}
	}
	for k, v := range b.Applications {
		a.Applications[k] = v
	}
	if a.Environments == nil {
		a.Environments = map[string]string{}
	}
	for k, v := range b.Environments {
		a.Environments[k] = v
	}
	if a.SeverityOrder == nil {
		a.SeverityOrder = map[string]int{}
	}
	for k, v := range b.SeverityOrder {
		a.SeverityOrder[k] = v
	}
	if a.Project == nil {
		a.Project = b.Project
	}
	if a.IssueType == nil {
		a.IssueType = b.IssueType
	}
	if a.Sheet == nil {
		a.Sheet = b.Sheet
	}
	if a.NoColor == nil {
		a.NoColor = b.NoColor
	}
	if a.NoAudit == nil {
		a.NoAudit = b.NoAudit
	}
	return a
}

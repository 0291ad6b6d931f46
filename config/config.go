package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/bugfix"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server" toml:"server" yaml:"server"`
	Parsing  ParsingConfig  `json:"parsing" toml:"parsing" yaml:"parsing"`
	Filters  FilterConfig   `json:"filters" toml:"filters" yaml:"filters"`
	Bugfix   BugfixConfig   `json:"bugfix" toml:"bugfix" yaml:"bugfix"`
	Coupling CouplingConfig `json:"coupling" toml:"coupling" yaml:"coupling"`
	Output   OutputConfig   `json:"output" toml:"output" yaml:"output"`
}

// ServerConfig identifies the team project collection. Passwords are never
// read from configuration files.
type ServerConfig struct {
	URL      string `json:"url" toml:"url" yaml:"url"`
	UserName string `json:"userName" toml:"user_name" yaml:"userName"`
}

// ParsingConfig describes how the tf client that produced the output was
// set up.
type ParsingConfig struct {
	Locale        string `json:"locale" toml:"locale" yaml:"locale"`       // Default: "en-US"
	TimeZone      string `json:"timeZone" toml:"time_zone" yaml:"timeZone"` // Default: "Local"
	Separator     string `json:"separator" toml:"separator" yaml:"separator"`
	SkipDateCheck bool   `json:"skipDateCheck" toml:"skip_date_check" yaml:"skipDateCheck"`
}

// FilterConfig holds server path filtering options.
type FilterConfig struct {
	Include []string `json:"include" toml:"include" yaml:"include"`
	Exclude []string `json:"exclude" toml:"exclude" yaml:"exclude"`
}

// BugfixConfig holds fix changeset detection configuration.
type BugfixConfig struct {
	Patterns []string `json:"patterns" toml:"patterns" yaml:"patterns"` // Regex patterns matched against comments
}

// CouplingConfig holds co-change analysis options.
type CouplingConfig struct {
	MinTogether          int     `json:"minTogether" toml:"min_together" yaml:"minTogether"`
	MinJaccard           float64 `json:"minJaccard" toml:"min_jaccard" yaml:"minJaccard"`
	MaxItemsPerChangeSet int     `json:"maxItemsPerChangeSet" toml:"max_items_per_changeset" yaml:"maxItemsPerChangeSet"`
	TopPairs             int     `json:"topPairs" toml:"top_pairs" yaml:"topPairs"`
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Format string `json:"format" toml:"format" yaml:"format"` // console, json, csv, markdown
	Top    int    `json:"top" toml:"top" yaml:"top"`          // 0 means all
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Parsing: ParsingConfig{
			Locale:    "en-US",
			TimeZone:  "Local",
			Separator: "------------",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Bugfix: BugfixConfig{
			Patterns: slices.Clone(bugfix.DefaultPatterns),
		},
		Coupling: CouplingConfig{
			MinTogether:          2,
			MinJaccard:           0.1,
			MaxItemsPerChangeSet: 50,
			TopPairs:             20,
		},
		Output: OutputConfig{
			Format: "console",
		},
	}
}

// DefaultFileName is looked up in the working directory, then in the
// home directory, when no path is given.
const DefaultFileName = ".tfhistory.json"

type format int

const (
	formatJSON format = iota
	formatTOML
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// The decoder is chosen by file extension.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{DefaultFileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, DefaultFileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, DefaultFileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch formatFor(path) {
	case formatTOML:
		_, err = toml.Decode(string(data), cfg)
	case formatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file in the format matching its
// extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch formatFor(path) {
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	case formatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolodex configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	Shell   Shell   `yaml:"shell"`
	Seed    Seed    `yaml:"seed"`
}

// Storage holds persistence settings.
type Storage struct {
	File string `yaml:"file"`
}

// Shell holds interactive session settings.
type Shell struct {
	Prompt string `yaml:"prompt"`
}

// Seed holds first-run seeding settings.
type Seed struct {
	Demo bool `yaml:"demo"` // Populate an empty book with sample contacts.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			File: defaultDataFile(),
		},
		Shell: Shell{
			Prompt: "Enter a command: ",
		},
	}
}

// defaultDataFile places the address book under the user's data directory,
// falling back to the working directory when home cannot be resolved.
func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "addressbook.json"
	}
	return filepath.Join(home, ".local", "share", "rolodex", "addressbook.json")
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return errors.New("config: storage.file cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_DATA_FILE, ROLODEX_PROMPT, ROLODEX_SEED.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_DATA_FILE"); v != "" {
		c.Storage.File = v
	}
	if v := os.Getenv("ROLODEX_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("ROLODEX_SEED"); v != "" {
		demo, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_SEED %q: %w", v, err)
		}
		c.Seed.Demo = demo
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage *rawStorage `yaml:"storage"`
	Shell   *rawShell   `yaml:"shell"`
	Seed    *rawSeed    `yaml:"seed"`
}

type rawStorage struct {
	File *string `yaml:"file"`
}

type rawShell struct {
	Prompt *string `yaml:"prompt"`
}

type rawSeed struct {
	Demo *bool `yaml:"demo"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil {
		if layer.Storage.File != nil {
			c.Storage.File = *layer.Storage.File
		}
	}
	if layer.Shell != nil {
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
	}
	if layer.Seed != nil {
		if layer.Seed.Demo != nil {
			c.Seed.Demo = *layer.Seed.Demo
		}
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig holds flag defaults read from a config file.
// Unset fields leave the flag untouched.
type fileConfig struct {
	Reference       string `yaml:"reference" toml:"reference"`
	Metrics         string `yaml:"metrics" toml:"metrics"`
	UTF8            string `yaml:"utf8" toml:"utf8"`
	Language        string `yaml:"language" toml:"language"`
	Workers         *int   `yaml:"workers" toml:"workers"`
	Sequential      *bool  `yaml:"sequential" toml:"sequential"`
	ContinueOnError *bool  `yaml:"continue_on_error" toml:"continue_on_error"`
	ByType          *bool  `yaml:"by_type" toml:"by_type"`
	Format          string `yaml:"format" toml:"format"`
	Details         *bool  `yaml:"details" toml:"details"`
	Output          string `yaml:"output" toml:"output"`
}

// loadConfig reads a YAML (.yml, .yaml) or TOML (.toml) config file
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("unsupported config file type %q (want .yml, .yaml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return &fc, nil
}

// values returns the configured flags as flag name to string value
func (c *fileConfig) values() map[string]string {
	v := make(map[string]string)
	setString := func(name, val string) {
		if val != "" {
			v[name] = val
		}
	}
	setBool := func(name string, val *bool) {
		if val != nil {
			v[name] = strconv.FormatBool(*val)
		}
	}
	setString("reference", c.Reference)
	setString("metrics", c.Metrics)
	setString("utf8", c.UTF8)
	setString("language", c.Language)
	setString("format", c.Format)
	setString("output", c.Output)
	if c.Workers != nil {
		v["workers"] = strconv.Itoa(*c.Workers)
	}
	setBool("sequential", c.Sequential)
	setBool("continue-on-error", c.ContinueOnError)
	setBool("by-type", c.ByType)
	setBool("details", c.Details)
	return v
}

// apply sets every configured flag the command line did not set.
// Flags the command does not define are ignored.
func (c *fileConfig) apply(fs *pflag.FlagSet) error {
	for name, val := range c.values() {
		f := fs.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := fs.Set(name, val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

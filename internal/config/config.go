// Package config loads the optional .convorc.yaml file that customizes
// REPL and CLI behavior: tab width, prompt string, and color.
package config

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Config is the parsed contents of .convorc.yaml. A missing file is
// equivalent to Default().
type Config struct {
	TabWidth int    `yaml:"tab_width"`
	Prompt   string `yaml:"prompt"`
	NoColor  bool   `yaml:"no_color"`
}

// Default returns the configuration used when no .convorc.yaml is present.
func Default() *Config {
	return &Config{
		TabWidth: 4,
		Prompt:   "convo> ",
		NoColor:  false,
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error; it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
	}
	return cfg, nil
}

// Package config loads REPL preferences (prompt text, colour output)
// from a YAML file, with the shell defaults applying whenever the file
// is absent or malformed. The core interpreter itself consumes no
// configuration (spec: "no on-disk state... is consumed by the core");
// this package exists purely for the driver CLI's external collaborator
// role. Grounded on the go-mix/go-mix-style REPL constants (banner,
// version, prompt, hardcoded in go-mix's main/*.go) turned into data
// loaded from disk, using gopkg.in/yaml.v3 — already present in the
// teacher's indirect dependency set — for the decode.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the REPL shell needs that isn't part of the
// language core.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Color   bool   `yaml:"color"`
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	License string `yaml:"license"`
}

// Default returns the built-in configuration used when no config file
// is present.
func Default() Config {
	return Config{
		Prompt:  "klug> ",
		Color:   true,
		Banner:  "klug",
		Version: "0.1.0",
		License: "MIT",
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() and overwriting only the fields present in the file. A
// missing file is not an error: Load silently falls back to defaults,
// since the interactive shell should never refuse to start over a
// config problem.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

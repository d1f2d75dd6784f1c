package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// projectConfig is the shape of an optional loom.toml in the working
// directory. Nothing in the language core reads this file; it only
// configures ambient behavior that the CLI threads through as Options.
type projectConfig struct {
	Debug struct {
		Enabled bool   `toml:"enabled"`
		Dump    string `toml:"dump"`
	} `toml:"debug"`
	Search struct {
		Paths []string `toml:"paths"`
	} `toml:"search"`
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
}

func defaultConfig() projectConfig {
	cfg := projectConfig{}
	cfg.Search.Paths = []string{"."}
	cfg.Output.Color = "auto"
	return cfg
}

// loadProjectConfig reads loom.toml from the working directory if present.
// A missing file is not an error; CLI flags are expected to override
// whatever it sets regardless.
func loadProjectConfig() (projectConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile("loom.toml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

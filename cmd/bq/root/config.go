package root

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	DBPath  string `yaml:"db_path"`
	Verbose bool   `yaml:"verbose"`
}

// loadConfig reads the optional config file. A missing or malformed file is
// ignored; the env var and flags win over it.
func loadConfig() fileConfig {
	var cfg fileConfig
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	raw, err := os.ReadFile(filepath.Join(home, ".config", "boardquest", "config.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}
	}
	return cfg
}

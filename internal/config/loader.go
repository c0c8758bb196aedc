package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is looked for in the working directory when no
// explicit path is given.
const defaultConfigFile = "pokeclone.yaml"

// Load loads the configuration.
// Search order: customPath -> ./pokeclone.yaml -> compiled defaults.
// File values overlay the defaults, so partial files are fine.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if data, err := os.ReadFile(defaultConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", defaultConfigFile, err)
		}
	}

	return cfg, cfg.Validate()
}

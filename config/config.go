package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel     int    `yaml:"log_level"`
	OutputFormat string `yaml:"output_format"`
	Pattern      string `yaml:"pattern"`

	Matcher MatcherConfig `yaml:"matcher"`
}

type MatcherConfig struct {
	// Fuzzy enables title-based matching of otherwise unresolved
	// candidate files.
	Fuzzy       bool `yaml:"fuzzy"`
	MaxDistance int  `yaml:"max_distance"`
}

// Load reads the YAML config at path. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return withDefaults(&Config{}), nil
	}
	if err != nil {
		return nil, err
	}

	var config *Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config == nil {
		config = &Config{}
	}

	return withDefaults(config), nil
}

func withDefaults(config *Config) *Config {
	if config.OutputFormat == "" {
		config.OutputFormat = "m4a"
	}
	if config.Pattern == "" {
		config.Pattern = "*.*"
	}
	if config.Matcher.MaxDistance == 0 {
		config.Matcher.MaxDistance = 3
	}
	return config
}

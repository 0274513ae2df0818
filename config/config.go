package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = ".datekit.yaml"

type Config struct {
	LogLevel string        `yaml:"logLevel"`
	Output   *OutputConfig `yaml:"output"`
	Watch    *WatchConfig  `yaml:"watch"`
}

type OutputConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

type WatchConfig struct {
	// minimum time between two evaluations of the watched file, e.g. "1s"
	Debounce string `yaml:"debounce"`
}

// Param returns an output parameter, or "" when it is not configured.
func (c *Config) Param(key string) string {
	if c == nil || c.Output == nil || c.Output.Params == nil {
		return ""
	}
	return c.Output.Params[key]
}

func Load(path string) (*Config, error) {
	useDefaultConf := (path == "")

	if useDefaultConf {
		path = DefaultPath
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return &conf, nil // return an empty config
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return &conf, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/parameter"
	"gopkg.in/yaml.v3"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

type Config struct {
	File       string              `yaml:"file"`
	TimeFormat string              `yaml:"timeFormat"`
	LogLevel   string              `yaml:"logLevel"`
	DefaultJob string              `yaml:"defaultJob"`
	Groups     map[string][]string `yaml:"groups"`
	Color      string              `yaml:"color"`
}

// DefaultDir is where the config and the log live unless told otherwise.
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("homedir.Dir: %w", err)
	}
	return filepath.Join(home, ".config", "worktock"), nil
}

// Load reads the config at path. With an empty path the default location is
// used, and a missing default file gives the default config.
func Load(path string) (*Config, error) {
	useDefaultConf := (path == "")

	if useDefaultConf {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("homedir.Expand: %w", err)
		}
		path = expanded
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return conf.withDefaults()
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return conf.withDefaults()
}

func (c Config) withDefaults() (*Config, error) {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeHM
	}
	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return nil, fmt.Errorf("timeFormat: %w", err)
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}
	c.Color, err = parameter.Validate(c.Color, colorModes)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Groups == nil {
		c.Groups = map[string][]string{}
	}

	return &c, nil
}

// LogFile returns the path of the log, with "~" expanded.
func (c *Config) LogFile() (string, error) {
	if c.File == "" {
		dir, err := DefaultDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "worktock.tock"), nil
	}

	path, err := homedir.Expand(c.File)
	if err != nil {
		return "", fmt.Errorf("homedir.Expand: %w", err)
	}
	return path, nil
}

// Package config loads mc2bsbh settings from an optional YAML file and
// MC2BSBH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. MC2BSBH_OUTPUT_EXTENSION.
const EnvPrefix = "MC2BSBH"

// FileName is the config file looked up in the working and home
// directories when no path is given.
const FileName = "mc2bsbh.yaml"

// Config holds all settings of the command line tool.
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Banner writes the "Created by" comment as the first header line.
	Banner bool `mapstructure:"banner" yaml:"banner"`
}

// OutputConfig controls where headers are written.
type OutputConfig struct {
	// Extension of generated header files, without the dot.
	Extension string `mapstructure:"extension" yaml:"extension"`

	// Dir receives the headers; empty means the working directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// InputConfig controls how the calibration file is read.
type InputConfig struct {
	// Charset of CHARTCAL.DIR; empty passes bytes through.
	Charset string `mapstructure:"charset" yaml:"charset"`
}

// LoggingConfig controls diagnostics on stderr.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Extension: "hdr",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Banner: true,
	}
}

// Load reads the config file at path, or the first of ./mc2bsbh.yaml and
// ~/.mc2bsbh.yaml that exists when path is empty. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	// Example: MC2BSBH_OUTPUT_DIR=/charts
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = findDefault()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Output.Dir = expandPath(cfg.Output.Dir)
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// the file leaves out.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output.extension", d.Output.Extension)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("input.charset", d.Input.Charset)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("banner", d.Banner)
}

func findDefault() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+FileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes the configuration to path, refusing to overwrite.
func (c *Config) WriteFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	data, err := c.YAML()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in an optional settings file and those
// available from the command line
type Config struct {
	// In is the list of FASTA files to split, processed in order
	In []string `mapstructure:"in"`

	// Out is the directory that per-record files are written to. It must exist
	Out string `mapstructure:"out"`

	// Count caps the number of files written across all inputs. 0 is no cap
	Count int `mapstructure:"count"`

	// Force allows existing files in Out to be overwritten
	Force bool `mapstructure:"force"`

	// Verbose turns on debug logging
	Verbose bool `mapstructure:"verbose"`

	// Settings is the path to an optional settings file
	Settings string `mapstructure:"settings"`
}

// New returns a new Config populated by the settings in v. If a settings
// file was set it's read first, and flags that were set on the command
// line take precedence over it
func New(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &c, nil
}

// Validate checks that the settings are enough to run a split
func (c *Config) Validate() error {
	if len(c.In) == 0 {
		return errors.New("no input FASTA file set [-i]")
	}
	for _, in := range c.In {
		if in == "" {
			return errors.New("empty input FASTA path")
		}
	}

	if c.Out == "" {
		return errors.New("no output directory set [-o]")
	}

	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}

	return nil
}

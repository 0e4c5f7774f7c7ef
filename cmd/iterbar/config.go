package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/vbauerster/iterbar"
)

// ErrConfig is returned for unreadable or invalid configuration.
var ErrConfig = errors.New("invalid configuration")

// fileConfig is the YAML configuration file. Every field is a default
// that the matching flag or environment variable overrides.
type fileConfig struct {
	Disable     *bool  `yaml:"disable"`
	MinInterval string `yaml:"min_interval"`
	Unit        string `yaml:"unit"`
	Width       int    `yaml:"width"`
	Style       string `yaml:"style"`
	Color       bool   `yaml:"color"`
	Transient   bool   `yaml:"transient"`
}

func loadFileConfig(fsys afero.Fs, name string) (fileConfig, error) {
	var fc fileConfig
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return fc, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("%w: %s: %w", ErrConfig, name, err)
	}
	return fc, nil
}

// resolveConfig merges fc with flags, a flag set on the command line
// or through its environment variable wins.
func resolveConfig(cmd *cli.Command, fc fileConfig) (iterbar.Config, error) {
	var cfg iterbar.Config
	if fc.Disable != nil {
		cfg.Disabled = *fc.Disable
	}
	if fc.MinInterval != "" {
		d, err := time.ParseDuration(fc.MinInterval)
		if err != nil {
			return cfg, fmt.Errorf("%w: min_interval: %w", ErrConfig, err)
		}
		cfg.MinInterval = d
	}
	cfg.Unit = fc.Unit
	cfg.Width = fc.Width
	cfg.Color = fc.Color
	cfg.Transient = fc.Transient

	style := fc.Style
	if cmd.IsSet(flagStyle) {
		style = cmd.String(flagStyle)
	}
	st, err := parseStyle(style)
	if err != nil {
		return cfg, err
	}
	cfg.Style = st

	if cmd.IsSet(flagDisable) {
		cfg.Disabled = cmd.Bool(flagDisable)
	}
	if cmd.IsSet(flagInterval) {
		cfg.MinInterval = cmd.Duration(flagInterval)
	}
	if cmd.IsSet(flagUnit) {
		cfg.Unit = cmd.String(flagUnit)
	}
	if cmd.IsSet(flagWidth) {
		cfg.Width = int(cmd.Int(flagWidth))
	}
	if cmd.IsSet(flagColor) {
		cfg.Color = cmd.Bool(flagColor)
	}
	return cfg, nil
}

func parseStyle(name string) (iterbar.Style, error) {
	switch name {
	case "", "default":
		return iterbar.StyleDefault, nil
	case "minimal":
		return iterbar.StyleMinimal, nil
	case "detailed":
		return iterbar.StyleDetailed, nil
	default:
		return iterbar.StyleDefault, fmt.Errorf("%w: unknown style %q", ErrConfig, name)
	}
}

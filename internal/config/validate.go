package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/export"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval must be a positive number of seconds, got %d", cfg.Interval),
			"Use something like --interval 2")
	}

	switch cfg.Color {
	case ColorAlways, ColorAuto, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Color),
			"Use one of: always, auto, never")
	}

	if cfg.Format != FormatText {
		if _, err := export.Get(cfg.Format); err != nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown output format '%s'", cfg.Format),
				"Use one of: "+strings.Join(Formats(), ", "))
		}
	}

	return nil
}

// Formats lists every accepted value for the format key.
func Formats() []string {
	return append([]string{FormatText}, export.Available()...)
}

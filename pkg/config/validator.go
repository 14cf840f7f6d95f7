package config

import (
	"fmt"
	"slices"

	"github.com/jenniferntran/gitlet/pkg/common/logger"
)

// Validate checks every value cfg holds.
func Validate(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return NewInvalidValueError(KeyLogLevel, err)
	}
	if _, err := logger.ParseFormat(cfg.Log.Format); err != nil {
		return NewInvalidValueError(KeyLogFormat, err)
	}
	return validateColor(cfg.UI.Color)
}

func validateColor(value string) error {
	valid := []string{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(valid, value) {
		return NewInvalidValueError(KeyUIColor, fmt.Errorf("must be one of %v, got %q", valid, value))
	}
	return nil
}

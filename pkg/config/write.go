package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// Write stores cfg at path as YAML, replacing any existing file.
func Write(path scpath.SourcePath, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := fileops.AtomicWrite(path.ToAbsolutePath(), data, 0644); err != nil {
		return NewConfigError("write", CodeWriteFailed, "", path.String(), err)
	}
	return nil
}

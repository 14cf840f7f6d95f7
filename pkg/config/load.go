package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// NewViper returns a viper instance with the defaults and environment
// overrides registered. Callers bind their flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyUIColor, d.UI.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v when the file exists and decodes the merged result.
// An empty path or a missing file leaves flags, environment and defaults.
func Load(v *viper.Viper, path scpath.SourcePath) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path.String())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, NewConfigError("read", CodeInvalidFormat, "", path.String(), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, NewConfigError("decode", CodeInvalidFormat, "", path.String(), err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

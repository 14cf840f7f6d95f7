// Package config holds the repository settings stored in .gitlet/config.yaml.
//
// Values are resolved with viper in the usual order: command-line flags bound
// by the caller, then GITLET_* environment variables, then the file, then the
// defaults below.
package config

// Keys as they appear in the file and in viper.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyUIColor   = "ui.color"
)

// EnvPrefix prefixes environment overrides: GITLET_LOG_LEVEL and so on.
const EnvPrefix = "GITLET"

// Colour modes for ui.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full repository configuration.
type Config struct {
	Log LogConfig `yaml:"log" mapstructure:"log"`
	UI  UIConfig  `yaml:"ui" mapstructure:"ui"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	Color string `yaml:"color" mapstructure:"color"`
}

// Default returns the configuration written by init.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "warn", Format: "text"},
		UI:  UIConfig{Color: ColorAuto},
	}
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

func tempConfigPath(t *testing.T) scpath.SourcePath {
	t.Helper()
	return scpath.SourcePath(t.TempDir()).ConfigPath()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), tempConfigPath(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteThenLoad(t *testing.T) {
	path := tempConfigPath(t)
	want := &Config{
		Log: LogConfig{Level: "debug", Format: "json"},
		UI:  UIConfig{Color: ColorNever},
	}
	require.NoError(t, Write(path, want))

	data, err := os.ReadFile(path.String())
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: debug")

	got, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, Write(path, Default()))
	t.Setenv("GITLET_LOG_LEVEL", "error")
	t.Setenv("GITLET_UI_COLOR", "always")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, ColorAlways, cfg.UI.Color)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_SetOverridesEverything(t *testing.T) {
	t.Setenv("GITLET_LOG_LEVEL", "error")
	v := NewViper()
	v.Set(KeyLogLevel, "info")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := tempConfigPath(t)
		require.NoError(t, os.WriteFile(path.String(), []byte("log: [unclosed"), 0644))
		_, err := Load(NewViper(), path)
		assert.True(t, IsInvalidFormat(err), "got %v", err)
	})

	t.Run("bad value", func(t *testing.T) {
		path := tempConfigPath(t)
		require.NoError(t, os.WriteFile(path.String(), []byte("ui:\n  color: sometimes\n"), 0644))
		_, err := Load(NewViper(), path)
		assert.True(t, IsInvalidValue(err), "got %v", err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", *Default(), true},
		{"unknown level", Config{Log: LogConfig{Level: "loud", Format: "text"}, UI: UIConfig{Color: ColorAuto}}, false},
		{"unknown format", Config{Log: LogConfig{Level: "info", Format: "xml"}, UI: UIConfig{Color: ColorAuto}}, false},
		{"empty color", Config{Log: LogConfig{Level: "info", Format: "text"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.cfg)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWrite_RejectsInvalid(t *testing.T) {
	path := tempConfigPath(t)
	err := Write(path, &Config{})
	assert.Error(t, err)
	_, statErr := os.Stat(path.String())
	assert.True(t, os.IsNotExist(statErr))
}

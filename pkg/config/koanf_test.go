package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	return testutil.IsolateXDG(t).ConfigHome
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, color.White, cfg.Colors.Default)
	assert.Equal(t, color.Black, cfg.Colors.Background)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 2, cfg.HTTP.Retries)
	assert.False(t, cfg.HTTP.Insecure, "certificate checks must be on by default")
}

func TestLoad_UserFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "hexmark", "config.toml"), `
[colors]
default = "00FF00"

[output]
format = "json"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, color.Color(0xFF00FF00), cfg.Colors.Default)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	// untouched keys keep their defaults
	assert.Equal(t, ColorAuto, cfg.Output.Color)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeConfig(t, path, "[http]\ntimeout = \"1m\"\nretries = 5\n")

		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, time.Minute, cfg.HTTP.Timeout)
		assert.Equal(t, 5, cfg.HTTP.Retries)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeConfig(t, path, "[colors\ndefault = ")

		_, err := Load(LoadOptions{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoad_Environment(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "hexmark", "config.toml"), "[output]\nformat = \"yaml\"\n")

	t.Setenv("HEXMARK_OUTPUT_FORMAT", "table")
	t.Setenv("HEXMARK_HTTP_INSECURE", "true")
	t.Setenv("HEXMARK_COLORS_BACKGROUND", "#FFFFFF")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, FormatTable, cfg.Output.Format, "env wins over the user file")
	assert.True(t, cfg.HTTP.Insecure)
	assert.Equal(t, color.White, cfg.Colors.Background)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		code errors.ErrorCode
	}{
		{"unknown format", map[string]string{"HEXMARK_OUTPUT_FORMAT": "svg"}, errors.ErrConfigValid},
		{"unknown color mode", map[string]string{"HEXMARK_OUTPUT_COLOR": "sometimes"}, errors.ErrConfigValid},
		{"negative retries", map[string]string{"HEXMARK_HTTP_RETRIES": "-1"}, errors.ErrConfigValid},
		{"bad color", map[string]string{"HEXMARK_COLORS_DEFAULT": "#12"}, errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(LoadOptions{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestDefaultsContent(t *testing.T) {
	content := DefaultsContent()
	assert.True(t, strings.Contains(content, "[colors]"))
	assert.True(t, strings.Contains(content, "insecure = false"))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg-test")
	assert.Equal(t, "/etc/xdg-test/hexmark/config.toml", filepath.ToSlash(DefaultPath()))
}

func TestIsFormat(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, IsFormat(f), f)
	}
	assert.False(t, IsFormat("html"))
}

package config

import (
	"time"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/errors"
)

// Output formats understood by the renderer
const (
	FormatText   = "text"
	FormatPlain  = "plain"
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatTOML   = "toml"
	FormatXML    = "xml"
	FormatCBOR   = "cbor"
	FormatBinary = "binary"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Formats lists every valid output format
var Formats = []string{
	FormatText, FormatPlain, FormatTable, FormatJSON, FormatYAML,
	FormatTOML, FormatXML, FormatCBOR, FormatBinary,
}

// Config is the fully merged configuration
type Config struct {
	Colors ColorsConfig `koanf:"colors"`
	Output OutputConfig `koanf:"output"`
	HTTP   HTTPConfig   `koanf:"http"`
}

type ColorsConfig struct {
	Default    color.Color `koanf:"default"`
	Background color.Color `koanf:"background"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

type HTTPConfig struct {
	Timeout  time.Duration `koanf:"timeout"`
	Retries  int           `koanf:"retries"`
	Insecure bool          `koanf:"insecure"`
}

// Validate checks values that the type system cannot
func (c *Config) Validate() error {
	if !IsFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown color mode %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	if c.HTTP.Retries < 0 {
		return errors.Newf(errors.ErrConfigValid, "http.retries must not be negative, got %d", c.HTTP.Retries).
			WithDetail("key", "http.retries")
	}
	if c.HTTP.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "http.timeout must not be negative, got %s", c.HTTP.Timeout).
			WithDetail("key", "http.timeout")
	}
	return nil
}

// IsFormat reports whether name is a known output format
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

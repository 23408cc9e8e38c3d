// Package color provides the 32-bit ARGB color value used by markup segments.
//
// Alpha lives in the high byte: 0xFFFF0000 is opaque red. Terminals cannot
// draw translucent text, so Blend composites a color onto a background before
// it is handed to a renderer.
package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/arthur-debert/hexmark/pkg/errors"
)

// Color is a 32-bit ARGB value
type Color uint32

const (
	White       Color = 0xFFFFFFFF
	Black       Color = 0xFF000000
	Transparent Color = 0x00000000
)

// FromARGB packs four channels into a Color
func FromARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGB packs three channels into an opaque Color
func FromRGB(r, g, b uint8) Color {
	return FromARGB(0xFF, r, g, b)
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Opaque returns c with the alpha channel forced to 0xFF
func (c Color) Opaque() Color {
	return c | 0xFF000000
}

// IsOpaque reports whether the alpha channel is 0xFF
func (c Color) IsOpaque() bool {
	return c.A() == 0xFF
}

// Hex formats c as #AARRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBHex formats the color channels as #RRGGBB, dropping alpha
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// Blend composites c over bg using c's alpha and returns an opaque color.
// bg's own alpha is ignored.
func (c Color) Blend(bg Color) Color {
	if c.IsOpaque() {
		return c
	}
	fg := toColorful(c)
	base := toColorful(bg)
	r, g, b := base.BlendRgb(fg, float64(c.A())/255.0).Clamped().RGB255()
	return FromRGB(r, g, b)
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}

// ParsePayload converts a 6 or 8 digit hex payload into a Color.
// Six digits are treated as opaque RGB, eight as ARGB.
func ParsePayload(payload string) (Color, error) {
	hex := payload
	switch len(payload) {
	case 6:
		hex = "FF" + payload
	case 8:
	default:
		return 0, errors.Newf(errors.ErrInvalidColorPayload,
			"color payload must have 6 or 8 hex digits, got %d", len(payload)).
			WithDetail("payload", payload)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidColorPayload,
			"invalid color payload %q", payload).
			WithDetail("payload", payload)
	}
	return Color(v), nil
}

// Parse accepts an optional leading '#' followed by a payload
func Parse(s string) (Color, error) {
	return ParsePayload(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}

// MustParse is like Parse but panics on error
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Package argb provides the packed 32-bit ARGB color type used by launcher
// preferences.
package argb

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// Parse accepts "#rrggbb" or "#aarrggbb". Six-digit values are fully opaque.
func Parse(s string) (Color, error) {
	value := strings.TrimSpace(s)
	if !strings.HasPrefix(value, "#") {
		return 0, fmt.Errorf("%w: %q: missing '#'", ErrInvalidColor, s)
	}
	value = value[1:]

	switch len(value) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: %q: expected 6 or 8 hex digits", ErrInvalidColor, s)
	}

	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(value) == 6 {
		n |= 0xff000000
	}
	return Color(n), nil
}

// MustParse is Parse for compile-time constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any image color to a packed ARGB value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromNRGBA(n)
}

// FromNRGBA packs unpremultiplied channels.
func FromNRGBA(c color.NRGBA) Color {
	return Color(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// NRGBA returns the color as unpremultiplied image channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGB returns the opaque "#rrggbb" form, dropping alpha. Terminal renderers
// only understand this form.
func (c Color) RGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// Hex returns the "#aarrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

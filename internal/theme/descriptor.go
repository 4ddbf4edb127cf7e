package theme

import (
	"fmt"
	"strings"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/icon"
)

// Kind tags the descriptor variant.
type Kind int

const (
	// KindDefault passes icons through and carries no colors.
	KindDefault Kind = iota
	// KindMonochrome tints every icon with the mask color.
	KindMonochrome
	// KindPolychrome tints each app with one of several colors chosen by a
	// hash of its package name.
	KindPolychrome
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindMonochrome:
		return "monochrome"
	case KindPolychrome:
		return "polychrome"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind parses the names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return KindDefault, nil
	case "monochrome":
		return KindMonochrome, nil
	case "polychrome":
		return KindPolychrome, nil
	}
	return 0, fmt.Errorf("unknown theme kind %q", s)
}

// Palette assigns colors to slots.
type Palette map[Slot]argb.Color

// Descriptor describes one theme. Descriptors are immutable once built.
type Descriptor struct {
	key        string
	name       string
	kind       Kind
	colors     Palette
	foreground []argb.Color
	background argb.Color
}

// NewDefault builds a passthrough theme without colors.
func NewDefault(key, name string) *Descriptor {
	return &Descriptor{key: key, name: name, kind: KindDefault}
}

// NewMonochrome builds a single-tint theme from palette.
func NewMonochrome(key, name string, palette Palette) *Descriptor {
	colors := make(Palette, len(palette))
	for slot, c := range palette {
		colors[slot] = c
	}
	return &Descriptor{key: key, name: name, kind: KindMonochrome, colors: colors}
}

// NewPolychrome builds a theme that tints each app with one of foreground.
func NewPolychrome(key, name string, foreground []argb.Color, background argb.Color) *Descriptor {
	return &Descriptor{
		key:        key,
		name:       name,
		kind:       KindPolychrome,
		foreground: append([]argb.Color(nil), foreground...),
		background: background,
	}
}

func (d *Descriptor) Key() string  { return d.key }
func (d *Descriptor) Name() string { return d.name }
func (d *Descriptor) Kind() Kind   { return d.kind }

// HasColors reports whether the theme defines a palette. Themes without one
// fall back to the platform resource colors.
func (d *Descriptor) HasColors() bool {
	return len(d.colors) > 0
}

// Color returns the slot color, or black when the slot is unset.
func (d *Descriptor) Color(slot Slot) argb.Color {
	if c, ok := d.colors[slot]; ok {
		return c
	}
	return argb.Black
}

// Palette returns a copy of the slot colors.
func (d *Descriptor) Palette() Palette {
	out := make(Palette, len(d.colors))
	for slot, c := range d.colors {
		out[slot] = c
	}
	return out
}

// Foreground returns a copy of the polychrome tint colors.
func (d *Descriptor) Foreground() []argb.Color {
	return append([]argb.Color(nil), d.foreground...)
}

// Background returns the polychrome background color.
func (d *Descriptor) Background() argb.Color {
	return d.background
}

// Validate checks the invariants a registered descriptor must hold.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if strings.TrimSpace(d.key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidDescriptor)
	}
	if strings.TrimSpace(d.name) == "" {
		return fmt.Errorf("%w: theme %q: name is required", ErrInvalidDescriptor, d.key)
	}
	for slot := range d.colors {
		if slot < 0 || int(slot) >= numSlots {
			return fmt.Errorf("%w: theme %q: unknown slot %d", ErrInvalidDescriptor, d.key, int(slot))
		}
	}
	switch d.kind {
	case KindDefault:
	case KindMonochrome:
		if _, ok := d.colors[SlotMask]; !ok {
			return fmt.Errorf("%w: theme %q: monochrome themes need a mask color", ErrInvalidDescriptor, d.key)
		}
	case KindPolychrome:
		if len(d.foreground) == 0 {
			return fmt.Errorf("%w: theme %q: polychrome themes need at least one foreground color", ErrInvalidDescriptor, d.key)
		}
	default:
		return fmt.Errorf("%w: theme %q: %s", ErrInvalidDescriptor, d.key, d.kind)
	}
	return nil
}

// IconResolver produces the untransformed icon for an app. Returned drawables
// may be cached and shared between callers.
type IconResolver interface {
	DefaultAppDrawable(component icon.ComponentName, uri string) (*icon.Drawable, error)
}

// Drawable returns the themed icon for component. Source icons are never
// modified: tinting happens on a private copy.
func (d *Descriptor) Drawable(icons IconResolver, component icon.ComponentName, uri string) (*icon.Drawable, error) {
	src, err := icons.DefaultAppDrawable(component, uri)
	if err != nil {
		return nil, fmt.Errorf("resolve icon for %s: %w", component, err)
	}

	switch d.kind {
	case KindMonochrome:
		mask := d.Color(SlotMask)
		if mask == argb.Transparent {
			return src, nil
		}
		out := src.Mutate()
		if mask == argb.White {
			out.SetColorFilter(icon.Grayscale())
		} else {
			out.SetColorFilter(icon.NewBlendFilter(mask, icon.Multiply))
		}
		return out, nil

	case KindPolychrome:
		out := src.Mutate()
		tint := d.foreground[PaletteIndex(component.Package, len(d.foreground))]
		out.SetColorFilter(icon.NewBlendFilter(tint, icon.Multiply))
		return out, nil

	default:
		return src, nil
	}
}

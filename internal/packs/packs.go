// Package packs loads user-defined theme packs from YAML files.
package packs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/theme"
)

var (
	// ErrPackKeyRequired is returned when a pack has no key.
	ErrPackKeyRequired = errors.New("theme pack key is required")
	// ErrPackNotFound is returned when a pack is not found.
	ErrPackNotFound = errors.New("theme pack not found")
)

// PackValidationError describes a validation error in a pack.
type PackValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e *PackValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("theme pack %s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("theme pack %s: %s", e.Field, e.Message)
}

// Pack is the on-disk form of a theme.
//
//	key: neon
//	name: Neon
//	kind: monochrome
//	colors:
//	  mask: "#ff39ff14"
//	  text: "#ffffffff"
type Pack struct {
	Key         string            `yaml:"key"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Kind        string            `yaml:"kind,omitempty"` // monochrome (default), polychrome, default
	Colors      map[string]string `yaml:"colors,omitempty"`
	Foreground  []string          `yaml:"foreground,omitempty"`
	Background  string            `yaml:"background,omitempty"`
	Source      string            `yaml:"-"` // file path or "builtin"
}

func (p *Pack) kind() (theme.Kind, error) {
	if strings.TrimSpace(p.Kind) == "" {
		return theme.KindMonochrome, nil
	}
	return theme.ParseKind(p.Kind)
}

// Validate checks that the pack converts to a valid descriptor.
func (p *Pack) Validate() error {
	_, err := p.ToDescriptor()
	return err
}

// ToDescriptor converts the pack into a theme descriptor. Colors may omit the
// leading '#'; YAML needs them quoted when they keep it.
func (p *Pack) ToDescriptor() (*theme.Descriptor, error) {
	if strings.TrimSpace(p.Key) == "" {
		return nil, ErrPackKeyRequired
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = p.Key
	}

	kind, err := p.kind()
	if err != nil {
		return nil, &PackValidationError{Field: "kind", Index: -1, Message: err.Error()}
	}

	switch kind {
	case theme.KindDefault:
		return theme.NewDefault(p.Key, name), nil

	case theme.KindPolychrome:
		if len(p.Foreground) == 0 {
			return nil, &PackValidationError{Field: "foreground", Index: -1, Message: "at least one color is required"}
		}
		foreground := make([]argb.Color, len(p.Foreground))
		for i, s := range p.Foreground {
			c, err := parseColor(s)
			if err != nil {
				return nil, &PackValidationError{Field: "foreground", Index: i, Message: err.Error()}
			}
			foreground[i] = c
		}
		var background argb.Color
		if strings.TrimSpace(p.Background) != "" {
			background, err = parseColor(p.Background)
			if err != nil {
				return nil, &PackValidationError{Field: "background", Index: -1, Message: err.Error()}
			}
		}
		return theme.NewPolychrome(p.Key, name, foreground, background), nil

	default:
		palette := make(theme.Palette, len(p.Colors))
		slots := make([]string, 0, len(p.Colors))
		for slot := range p.Colors {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slotName := range slots {
			slot, err := theme.ParseSlot(slotName)
			if err != nil {
				return nil, &PackValidationError{Field: "colors", Index: -1, Message: err.Error()}
			}
			c, err := parseColor(p.Colors[slotName])
			if err != nil {
				return nil, &PackValidationError{Field: "colors." + slotName, Index: -1, Message: err.Error()}
			}
			palette[slot] = c
		}
		if _, ok := palette[theme.SlotMask]; !ok {
			return nil, &PackValidationError{Field: "colors.mask", Index: -1, Message: "mask color is required"}
		}
		return theme.NewMonochrome(p.Key, name, palette), nil
	}
}

func parseColor(s string) (argb.Color, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return argb.Parse(s)
}

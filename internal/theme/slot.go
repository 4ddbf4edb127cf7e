// Package theme maps launcher themes to chrome colors and icon tints, and
// moves those colors in and out of the preference stores.
package theme

import (
	"fmt"
	"strings"
)

// Slot is a semantic color role defined by a theme.
type Slot int

const (
	SlotMask Slot = iota
	SlotText
	SlotAltText
	SlotBackground
	SlotAltBackground

	numSlots = int(SlotAltBackground) + 1
)

var slotNames = [numSlots]string{
	SlotMask:          "mask",
	SlotText:          "text",
	SlotAltText:       "alt_text",
	SlotBackground:    "background",
	SlotAltBackground: "alt_background",
}

// Slots lists every slot in declaration order.
func Slots() []Slot {
	return []Slot{SlotMask, SlotText, SlotAltText, SlotBackground, SlotAltBackground}
}

func (s Slot) String() string {
	if s < 0 || int(s) >= numSlots {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// ParseSlot accepts the names produced by Slot.String, case-insensitively.
// Dashes and underscores are interchangeable.
func ParseSlot(name string) (Slot, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range slotNames {
		if n == norm {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color slot %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

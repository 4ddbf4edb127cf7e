package theme

import (
	"fmt"

	"github.com/launchtime/launchtheme/internal/argb"
)

// Live preference names holding chrome colors.
const (
	PrefCatTabBackground         = "cattab_background"
	PrefCatTabSelectedBackground = "cattabselected_background"
	PrefCatTabSelectedText       = "cattabselected_text"
	PrefCatTabTextColor          = "cattabtextcolor"
	PrefCatTabTextColorInv       = "cattabtextcolorinv"
	PrefWallpaperColor           = "wallpapercolor"
	PrefTextColor                = "textcolor"
)

// colorPref ties a preference to the theme slot feeding it and to the
// resource color used when the theme has no palette. An empty resource means
// transparent.
type colorPref struct {
	name     string
	slot     Slot
	resource string
}

// The order is persisted through the snapshot check in RestoreUserColors:
// the first entry decides whether a snapshot exists.
var colorPrefs = [...]colorPref{
	{name: PrefCatTabBackground, slot: SlotAltBackground, resource: ResCatTabBackground},
	{name: PrefCatTabSelectedBackground, slot: SlotAltBackground, resource: ResCatTabSelectedBackground},
	{name: PrefCatTabSelectedText, slot: SlotAltText, resource: ResCatTabSelectedText},
	{name: PrefCatTabTextColor, slot: SlotText, resource: ResTextColor},
	{name: PrefCatTabTextColorInv, slot: SlotBackground, resource: ResTextColorInv},
	{name: PrefWallpaperColor, slot: SlotBackground},
	{name: PrefTextColor, slot: SlotText, resource: ResTextColor},
}

// ColorPreferences returns the tracked preference names in table order.
func ColorPreferences() []string {
	names := make([]string, len(colorPrefs))
	for i, p := range colorPrefs {
		names[i] = p.name
	}
	return names
}

// SlotFor returns the slot a preference is mapped to.
func SlotFor(pref string) (Slot, error) {
	i, err := prefIndex(pref)
	if err != nil {
		return 0, err
	}
	return colorPrefs[i].slot, nil
}

func prefIndex(pref string) (int, error) {
	for i, p := range colorPrefs {
		if p.name == pref {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q", ErrInvalidPreference, pref)
}

// colorDefaults resolves the fallback color of every tracked preference.
func colorDefaults(res ResourceColors) [len(colorPrefs)]argb.Color {
	var out [len(colorPrefs)]argb.Color
	for i, p := range colorPrefs {
		if p.resource == "" {
			out[i] = argb.Transparent
			continue
		}
		out[i] = res.ResourceColor(p.resource)
	}
	return out
}

// themeColors resolves every tracked preference for d, falling back to the
// resource defaults when d is nil or has no palette.
func themeColors(d *Descriptor, res ResourceColors) [len(colorPrefs)]argb.Color {
	if d == nil || !d.HasColors() {
		return colorDefaults(res)
	}
	var out [len(colorPrefs)]argb.Color
	for i, p := range colorPrefs {
		out[i] = d.Color(p.slot)
	}
	return out
}

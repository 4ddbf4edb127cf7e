package theme

import "github.com/launchtime/launchtheme/internal/argb"

// Resource color names supplied by the host.
const (
	ResCatTabBackground         = "cattab_background"
	ResCatTabSelectedBackground = "cattabselected_background"
	ResCatTabSelectedText       = "cattabselected_text"
	ResTextColor                = "textcolor"
	ResTextColorInv             = "textcolorinv"
)

// ResourceColors resolves the host's stock colors by name.
type ResourceColors interface {
	ResourceColor(name string) argb.Color
}

// StaticResources is a fixed name to color table. Unknown names resolve to
// black.
type StaticResources map[string]argb.Color

func (r StaticResources) ResourceColor(name string) argb.Color {
	if c, ok := r[name]; ok {
		return c
	}
	return argb.Black
}

package styles

import (
	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/theme"
)

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists the chrome palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// FromDescriptor derives tokens from a launcher theme. Chrome colors come from
// the theme palette, or from res when the theme has none. Status colors are
// kept from base.
func FromDescriptor(d *theme.Descriptor, res theme.ResourceColors, base Theme) Theme {
	text := res.ResourceColor(theme.ResTextColor)
	background := res.ResourceColor(theme.ResCatTabBackground)
	panel := res.ResourceColor(theme.ResCatTabSelectedBackground)
	focus := res.ResourceColor(theme.ResCatTabSelectedText)
	accent := base.Tokens.Accent

	name := base.Name
	if d != nil {
		name = d.Key()
		if d.HasColors() {
			text = d.Color(theme.SlotText)
			background = d.Color(theme.SlotBackground)
			panel = d.Color(theme.SlotAltBackground)
			focus = d.Color(theme.SlotAltText)
		}
		switch d.Kind() {
		case theme.KindMonochrome:
			if mask := d.Color(theme.SlotMask); mask.Alpha() != 0 && mask != argb.White && mask != argb.Black {
				accent = mask.RGB()
			}
		case theme.KindPolychrome:
			accent = d.Foreground()[0].RGB()
		}
	}

	tokens := base.Tokens
	tokens.Background = background.RGB()
	tokens.Panel = panel.RGB()
	tokens.Text = text.RGB()
	tokens.TextMuted = Blend(text, background, 0.45)
	tokens.Border = Blend(text, background, 0.75)
	tokens.Accent = accent
	tokens.Focus = focus.RGB()

	return Theme{Name: name, Tokens: tokens}
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

// RenderSwatch renders c as a colored block labelled with its hex value, or
// with label when given.
func RenderSwatch(c argb.Color, label string) string {
	if label == "" {
		label = c.Hex()
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.RGB())).
		Foreground(lipgloss.Color(styles.LabelColor(c))).
		Padding(0, 1)
	if c.Alpha() == 0 {
		style = lipgloss.NewStyle().Padding(0, 1).Faint(true)
		label = "transparent"
	}
	return style.Render(label)
}

// RenderPalette lists a theme's colors one per line: slot colors for
// monochrome themes, the tint cycle for polychrome themes, and the resource
// fallbacks for themes without a palette.
func RenderPalette(styleSet styles.Styles, d *theme.Descriptor, res theme.ResourceColors) string {
	lines := []string{
		fmt.Sprintf("%s %s", styleSet.Title.Render(d.Name()), RenderKindBadge(styleSet, d.Kind())),
	}

	switch d.Kind() {
	case theme.KindPolychrome:
		swatches := make([]string, 0, len(d.Foreground()))
		for _, c := range d.Foreground() {
			swatches = append(swatches, RenderSwatch(c, ""))
		}
		lines = append(lines, paletteLine(styleSet, "foreground", strings.Join(swatches, " ")))
		lines = append(lines, paletteLine(styleSet, "background", RenderSwatch(d.Background(), "")))
	default:
		if d.HasColors() {
			for _, slot := range theme.Slots() {
				lines = append(lines, paletteLine(styleSet, slot.String(), RenderSwatch(d.Color(slot), "")))
			}
		} else {
			lines = append(lines, styleSet.Muted.Render("uses resource colors:"))
			for _, name := range []string{
				theme.ResCatTabBackground,
				theme.ResCatTabSelectedBackground,
				theme.ResCatTabSelectedText,
				theme.ResTextColor,
				theme.ResTextColorInv,
			} {
				lines = append(lines, paletteLine(styleSet, name, RenderSwatch(res.ResourceColor(name), "")))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// RenderColorValues lists live preference values, marking user overrides.
func RenderColorValues(styleSet styles.Styles, values []theme.ColorValue) string {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		line := paletteLine(styleSet, v.Pref, RenderSwatch(v.Color, ""))
		if v.Custom {
			line += " " + styleSet.Warning.Render("custom")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func paletteLine(styleSet styles.Styles, name, value string) string {
	return fmt.Sprintf("  %s %s", styleSet.Muted.Render(fmt.Sprintf("%-26s", name)), value)
}

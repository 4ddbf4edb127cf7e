package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

// RenderKindBadge renders a theme kind as a short bracketed label.
func RenderKindBadge(styleSet styles.Styles, kind theme.Kind) string {
	label, style := kindDescriptor(styleSet, kind)
	return style.Render("[" + label + "]")
}

func kindDescriptor(styleSet styles.Styles, kind theme.Kind) (string, lipgloss.Style) {
	switch kind {
	case theme.KindMonochrome:
		return "mono", styleSet.Accent
	case theme.KindPolychrome:
		return "poly", styleSet.Info
	default:
		return "stock", styleSet.Muted
	}
}

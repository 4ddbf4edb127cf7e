package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/launchtime/launchtheme/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "enter", "/")
	Label   string // Display label (e.g., "Select", "Filter")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "enter:Select  /:Filter  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// PickerQuickActions returns the picker shortcuts for the current mode.
func PickerQuickActions(filtering, hasSelection bool) []QuickAction {
	if filtering {
		return []QuickAction{
			{Key: "enter", Label: "Done", Enabled: true},
			{Key: "esc", Label: "Clear", Enabled: true},
		}
	}
	return []QuickAction{
		{Key: "up/down", Label: "Move", Enabled: hasSelection},
		{Key: "enter", Label: "Select", Enabled: hasSelection},
		{Key: "/", Label: "Filter", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// RenderFooter centers an action bar across width.
func RenderFooter(styleSet styles.Styles, actions []QuickAction, width int) string {
	bar := RenderQuickActionBar(styleSet, actions)
	if bar == "" || width <= 0 {
		return bar
	}

	containerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styleSet.Theme.Tokens.TextMuted)).
		Width(width).
		Align(lipgloss.Center)

	return containerStyle.Render(bar)
}

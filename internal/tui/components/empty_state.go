// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/launchtime/launchtheme/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍", "🚀").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "launchtheme themes switch bw").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyEvents returns an empty state for an empty event log.
func EmptyEvents() EmptyState {
	return EmptyState{
		Icon:     "📋",
		Title:    "No theme events yet",
		Subtitle: "Switching, applying and saving themes is recorded here.",
		Suggestions: []Suggestion{
			{Command: "launchtheme themes list", Description: "see available themes"},
			{Command: "launchtheme themes switch <key>", Description: "change the active theme"},
		},
	}
}

// EmptyThemesFiltered returns an empty state for when filter matches no theme.
func EmptyThemesFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No themes match '%s'", filter),
		Subtitle: "Press backspace to edit or esc to clear the filter.",
	}
}

// EmptySnapshot returns an empty state for a theme without saved colors.
func EmptySnapshot(themeKey string) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("No saved colors for %s", themeKey),
		Subtitle: "Theme colors were applied instead.",
		Suggestions: []Suggestion{
			{Command: "launchtheme colors save", Description: "snapshot the current colors"},
		},
	}
}

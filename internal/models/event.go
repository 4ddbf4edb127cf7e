// Package models defines the records launchtheme persists.
package models

import (
	"strings"
	"time"
)

// EventType categorizes theme events.
type EventType string

const (
	// Theme events
	EventTypeThemeApplied  EventType = "theme.applied"
	EventTypeThemeSwitched EventType = "theme.switched"

	// User color events
	EventTypeColorsSaved    EventType = "colors.saved"
	EventTypeColorsRestored EventType = "colors.restored"
	EventTypeColorsReset    EventType = "colors.reset"
	EventTypeColorSet       EventType = "colors.set"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// ThemeKey is the pack that was active or selected.
	ThemeKey string `json:"theme_key"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(e.ThemeKey) == "" {
		validation.AddMessage("theme_key", "theme_key is required")
	}
	return validation.Err()
}

// Package events provides helper functions for logging launchtheme events.
package events

import (
	"context"
	"fmt"

	"github.com/launchtime/launchtheme/internal/models"
	"github.com/launchtime/launchtheme/internal/theme"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeEvent records an event of eventType against a theme pack.
func LogThemeEvent(ctx context.Context, repo Repository, eventType models.EventType, themeKey string, metadata map[string]string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if themeKey == "" {
		return fmt.Errorf("theme key is required")
	}

	event := &models.Event{
		Type:     eventType,
		ThemeKey: themeKey,
		Metadata: metadata,
	}

	return repo.Create(ctx, event)
}

// Recorder writes bridge actions to an event repository.
type Recorder struct {
	repo Repository

	// Metadata is attached to every event, e.g. the invoking command.
	Metadata map[string]string
}

var _ theme.Recorder = (*Recorder)(nil)

// NewRecorder returns a Recorder backed by repo.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record implements theme.Recorder.
func (r *Recorder) Record(ctx context.Context, action theme.Action, themeKey string) error {
	var metadata map[string]string
	if len(r.Metadata) > 0 {
		metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			metadata[k] = v
		}
	}
	return LogThemeEvent(ctx, r.repo, models.EventType(action), themeKey, metadata)
}

package events

import (
	"context"
	"errors"
	"testing"

	"github.com/launchtime/launchtheme/internal/models"
	"github.com/launchtime/launchtheme/internal/theme"
)

type fakeRepo struct {
	last *models.Event
	err  error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return r.err
}

func TestLogThemeEvent(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogThemeEvent(context.Background(), repo, models.EventTypeThemeApplied, "bw", nil); err != nil {
		t.Fatalf("LogThemeEvent failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeThemeApplied {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.ThemeKey != "bw" {
		t.Fatalf("unexpected theme key: %q", repo.last.ThemeKey)
	}
}

func TestLogThemeEventRequiresInputs(t *testing.T) {
	if err := LogThemeEvent(context.Background(), nil, models.EventTypeThemeApplied, "bw", nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogThemeEvent(context.Background(), &fakeRepo{}, models.EventTypeThemeApplied, "", nil); err == nil {
		t.Fatal("expected error for empty theme key")
	}
}

func TestRecorderMapsActions(t *testing.T) {
	actions := map[theme.Action]models.EventType{
		theme.ActionApplied:  models.EventTypeThemeApplied,
		theme.ActionSwitched: models.EventTypeThemeSwitched,
		theme.ActionSaved:    models.EventTypeColorsSaved,
		theme.ActionRestored: models.EventTypeColorsRestored,
		theme.ActionReset:    models.EventTypeColorsReset,
		theme.ActionColorSet: models.EventTypeColorSet,
	}

	for action, want := range actions {
		repo := &fakeRepo{}
		recorder := NewRecorder(repo)
		recorder.Metadata = map[string]string{"command": "test"}

		if err := recorder.Record(context.Background(), action, "termcap"); err != nil {
			t.Fatalf("Record(%s) failed: %v", action, err)
		}
		if repo.last.Type != want {
			t.Fatalf("Record(%s): got type %q, want %q", action, repo.last.Type, want)
		}
		if repo.last.Metadata["command"] != "test" {
			t.Fatalf("Record(%s): metadata not attached", action)
		}
	}
}

func TestRecorderPropagatesErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}

	if err := NewRecorder(repo).Record(context.Background(), theme.ActionReset, "bw"); err == nil {
		t.Fatal("expected repository error")
	}
}

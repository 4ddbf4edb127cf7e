package models

import (
	"errors"
	"strings"
	"testing"
)

func TestEventValidate(t *testing.T) {
	e := &Event{}
	err := e.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verrs.Errors))
	}
	if !strings.Contains(err.Error(), "theme_key") {
		t.Fatalf("unexpected message: %v", err)
	}

	e = &Event{Type: EventTypeThemeApplied, ThemeKey: "bw"}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestPreferenceDisplay(t *testing.T) {
	n := int64(-16777216)
	s := "bwicon"
	if got := (&Preference{IntValue: &n}).Display(); got != "-16777216" {
		t.Fatalf("Display() = %q", got)
	}
	if got := (&Preference{StringValue: &s}).Display(); got != `"bwicon"` {
		t.Fatalf("Display() = %q", got)
	}
}

package components

import (
	"strings"
	"testing"

	"github.com/launchtime/launchtheme/internal/tui/styles"
)

func TestRenderQuickActionBarSkipsDisabled(t *testing.T) {
	styleSet := styles.DefaultStyles()
	bar := RenderQuickActionBar(styleSet, []QuickAction{
		{Key: "enter", Label: "Select", Enabled: true},
		{Key: "x", Label: "Hidden", Enabled: false},
	})

	if !strings.Contains(bar, "Select") {
		t.Errorf("Expected enabled action in bar, got: %s", bar)
	}
	if strings.Contains(bar, "Hidden") {
		t.Errorf("Expected disabled action to be skipped, got: %s", bar)
	}
	if RenderQuickActionBar(styleSet, nil) != "" {
		t.Error("Expected empty bar for no actions")
	}
}

func TestPickerQuickActions(t *testing.T) {
	styleSet := styles.DefaultStyles()

	normal := RenderQuickActionBar(styleSet, PickerQuickActions(false, true))
	for _, want := range []string{"Move", "Select", "Filter", "Quit"} {
		if !strings.Contains(normal, want) {
			t.Errorf("Expected %q in bar, got: %s", want, normal)
		}
	}

	empty := RenderQuickActionBar(styleSet, PickerQuickActions(false, false))
	if strings.Contains(empty, "Select") {
		t.Errorf("Expected no Select without a highlighted theme, got: %s", empty)
	}

	filtering := RenderQuickActionBar(styleSet, PickerQuickActions(true, true))
	if !strings.Contains(filtering, "Clear") {
		t.Errorf("Expected Clear in filter bar, got: %s", filtering)
	}
}

func TestRenderFooterWidth(t *testing.T) {
	styleSet := styles.DefaultStyles()
	footer := RenderFooter(styleSet, PickerQuickActions(false, true), 80)
	if !strings.Contains(footer, "Quit") {
		t.Errorf("Expected actions in footer, got: %s", footer)
	}
}

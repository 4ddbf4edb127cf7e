package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/launchtime/launchtheme/internal/models"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

func colorEnabled() bool {
	if IsJSONOutput() || IsJSONLOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}

func colorize(text, color string) string {
	if color == "" || !colorEnabled() {
		return text
	}
	return color + text + colorReset
}

func formatEventType(eventType models.EventType) string {
	label, color := eventLabel(eventType)
	return colorize(formatStatusLabel(label, string(eventType)), color)
}

func eventLabel(eventType models.EventType) (string, string) {
	switch eventType {
	case models.EventTypeThemeSwitched, models.EventTypeThemeApplied:
		return "THEME", colorCyan
	case models.EventTypeColorsSaved:
		return "SAVE", colorGreen
	case models.EventTypeColorsRestored:
		return "LOAD", colorGreen
	case models.EventTypeColorsReset:
		return "RESET", colorYellow
	case models.EventTypeColorSet:
		return "SET", colorMagenta
	default:
		return "?", colorRed
	}
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}

func formatCustom(custom bool) string {
	if custom {
		return colorize("custom", colorYellow)
	}
	return "theme"
}

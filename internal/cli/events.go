package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/db"
	"github.com/launchtime/launchtheme/internal/models"
	"github.com/launchtime/launchtheme/internal/tui/components"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

var (
	eventsSince  time.Duration
	eventsTheme  string
	eventsType   string
	eventsLimit  int
	eventsCursor string
)

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().DurationVar(&eventsSince, "since", 0, "only events newer than this (e.g. 24h)")
	eventsCmd.Flags().StringVar(&eventsTheme, "theme", "", "filter by theme key")
	eventsCmd.Flags().StringVar(&eventsType, "type", "", "filter by event type (e.g. theme.switched)")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 50, "maximum events to show")
	eventsCmd.Flags().StringVar(&eventsCursor, "cursor", "", "continue after this event id")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the theme event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		query := db.EventQuery{Cursor: eventsCursor, Limit: eventsLimit}
		if eventsSince > 0 {
			since := time.Now().Add(-eventsSince)
			query.Since = &since
		}
		if eventsTheme != "" {
			query.ThemeKey = &eventsTheme
		}
		if eventsType != "" {
			eventType := models.EventType(eventsType)
			query.Type = &eventType
		}

		page, err := db.NewEventRepository(database).Query(cmd.Context(), query)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			if IsJSONLOutput() {
				return WriteOutput(cmd.OutOrStdout(), page.Events)
			}
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"events":      page.Events,
				"next_cursor": page.NextCursor,
			})
		}

		out := cmd.OutOrStdout()
		if len(page.Events) == 0 {
			fmt.Fprintln(out, components.EmptyEvents().Render(styles.DefaultStyles()))
			return nil
		}

		rows := make([][]string, 0, len(page.Events))
		for _, event := range page.Events {
			rows = append(rows, []string{
				humanize.Time(event.Timestamp),
				formatEventType(event.Type),
				event.ThemeKey,
				formatMetadata(event.Metadata),
			})
		}
		if err := writeTable(out, []string{"WHEN", "EVENT", "THEME", "DETAILS"}, rows); err != nil {
			return err
		}
		if page.NextCursor != "" {
			fmt.Fprintf(out, "\nMore events: launchtheme events --cursor %s\n", page.NextCursor)
		}
		return nil
	},
}

func formatMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+metadata[k])
	}
	return strings.Join(parts, " ")
}

package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/components"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

var showActivityLimit int

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesSwitchCmd)
	themesCmd.AddCommand(themesApplyCmd)

	themesShowCmd.Flags().IntVar(&showActivityLimit, "activity", 5, "number of recent events to show")
}

var themesCmd = &cobra.Command{
	Use:     "themes",
	Aliases: []string{"theme"},
	Short:   "List, inspect and switch themes",
}

// ThemeView is the JSON form of a theme.
type ThemeView struct {
	Key        string            `json:"key"`
	Name       string            `json:"name"`
	Kind       string            `json:"kind"`
	Active     bool              `json:"active"`
	Registered bool              `json:"registered"`
	Colors     map[string]string `json:"colors,omitempty"`
	Foreground []string          `json:"foreground,omitempty"`
	Background string            `json:"background,omitempty"`

	// Set for themes loaded from a pack file or the embedded packs.
	Source      string `json:"source,omitempty"`
	Description string `json:"description,omitempty"`
}

func newThemeView(d *theme.Descriptor, active string, registered bool) ThemeView {
	view := ThemeView{
		Key:        d.Key(),
		Name:       d.Name(),
		Kind:       d.Kind().String(),
		Active:     d.Key() == active,
		Registered: registered,
	}
	if d.HasColors() {
		view.Colors = make(map[string]string)
		for slot, c := range d.Palette() {
			view.Colors[slot.String()] = c.Hex()
		}
	}
	if d.Kind() == theme.KindPolychrome {
		for _, c := range d.Foreground() {
			view.Foreground = append(view.Foreground, c.Hex())
		}
		view.Background = d.Background().Hex()
	}
	return view
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		active := a.bridge.ActiveKey()
		themes := a.registry.Themes()

		if IsJSONOutput() || IsJSONLOutput() {
			views := make([]ThemeView, 0, len(themes))
			for _, d := range themes {
				views = append(views, newThemeView(d, active, true))
			}
			return WriteOutput(cmd.OutOrStdout(), views)
		}

		rows := make([][]string, 0, len(themes))
		for _, d := range themes {
			rows = append(rows, []string{d.Key(), d.Name(), d.Kind().String(), formatYesNo(d.Key() == active)})
		}
		if err := writeTable(cmd.OutOrStdout(), []string{"KEY", "NAME", "KIND", "ACTIVE"}, rows); err != nil {
			return err
		}
		if _, ok := a.registry.Get(active); !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "\nActive icon pack %q has no theme; resource colors apply.\n", active)
		}
		return nil
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show a theme's palette",
	Long:  "Show a theme's palette and recent activity. Defaults to the active theme.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		key := a.bridge.ActiveKey()
		if len(args) == 1 {
			key = args[0]
		}
		d, ok := a.registry.Get(key)
		if !ok {
			return &PreflightError{
				Message:  fmt.Sprintf("%s: %s", theme.ErrThemeNotFound, key),
				Hint:     "Theme packs are read from --themes-dir, .launchtheme/themes and the user config dir",
				NextStep: "launchtheme themes list",
			}
		}

		pack, err := findPack(key)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			view := newThemeView(d, a.bridge.ActiveKey(), true)
			if pack != nil {
				view.Source = pack.Source
				view.Description = pack.Description
			}
			return WriteOutput(cmd.OutOrStdout(), view)
		}

		styleSet := styles.BuildStyles(styles.FromDescriptor(d, a.resources, styles.DefaultTheme))
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, components.RenderPalette(styleSet, d, a.resources))
		if pack != nil {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Pack: %s\n", pack.Source)
			if pack.Description != "" {
				fmt.Fprintln(out, pack.Description)
			}
		}

		if showActivityLimit <= 0 {
			return nil
		}
		recent, err := a.eventRepo.ListByTheme(cmd.Context(), key, showActivityLimit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, styleSet.Muted.Render("Recent activity:"))
		for _, event := range recent {
			fmt.Fprintf(out, "  %-14s %s\n", humanize.Time(event.Timestamp), formatEventType(event.Type))
		}
		return nil
	},
}

var themesSwitchCmd = &cobra.Command{
	Use:   "switch <key>",
	Short: "Switch to another theme",
	Long: `Save the current colors for the active theme, select the new one, and
restore its saved colors. Themes without saved colors get their palette.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		from := a.bridge.ActiveKey()
		to := args[0]
		_, registered := a.registry.Get(to)

		step := startProgress(fmt.Sprintf("Switching %s -> %s", from, to))
		restored, err := a.bridge.SwitchTheme(cmd.Context(), a.icons, to)
		if err != nil {
			step.Fail(err)
			return err
		}
		step.Done()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"from":       from,
				"to":         to,
				"restored":   restored,
				"registered": registered,
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Switched from %s to %s.\n", from, to)
		if !registered {
			fmt.Fprintf(out, "%s is not a registered theme; resource colors were applied.\n", to)
		}
		if restored {
			fmt.Fprintln(out, "Restored saved colors.")
		} else {
			fmt.Fprintln(out, components.EmptySnapshot(to).Render(styles.DefaultStyles()))
		}
		return nil
	},
}

var themesApplyCmd = &cobra.Command{
	Use:   "apply [key]",
	Short: "Overwrite the live colors with a theme's palette",
	Long:  "Overwrite the live colors with a theme's palette. Defaults to the active theme. The selected pack is not changed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		key := a.bridge.ActiveKey()
		if len(args) == 1 {
			key = args[0]
		}
		d, registered := a.descriptorFor(key)
		if len(args) == 1 && !registered {
			return fmt.Errorf("%w: %s", theme.ErrThemeNotFound, key)
		}

		if err := a.bridge.ApplyTheme(cmd.Context(), d); err != nil {
			return err
		}

		values, err := a.bridge.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), values)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %s.\n", d.Name())
		return writeColorTable(cmd, values)
	},
}

func writeColorTable(cmd *cobra.Command, values []theme.ColorValue) error {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v.Pref, v.Slot.String(), v.Color.Hex(), formatCustom(v.Custom)})
	}
	return writeTable(cmd.OutOrStdout(), []string{"PREFERENCE", "SLOT", "COLOR", "SOURCE"}, rows)
}

func parseColorArg(s string) (argb.Color, error) {
	c, err := argb.Parse(s)
	if err != nil {
		return 0, &PreflightError{
			Message: err.Error(),
			Hint:    "Colors are #rrggbb or #aarrggbb; quote them in the shell",
		}
	}
	return c, nil
}

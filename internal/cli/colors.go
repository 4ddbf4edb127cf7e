package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/prefs"
	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/components"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

var colorsListStored bool

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.AddCommand(colorsGetCmd)
	colorsCmd.AddCommand(colorsListCmd)
	colorsCmd.AddCommand(colorsSaveCmd)
	colorsCmd.AddCommand(colorsRestoreCmd)
	colorsCmd.AddCommand(colorsResetCmd)
	colorsCmd.AddCommand(colorsSetCmd)

	colorsListCmd.Flags().BoolVar(&colorsListStored, "stored", false, "list raw stored preferences instead")
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Read and edit the live launcher colors",
}

var colorsGetCmd = &cobra.Command{
	Use:   "get <pref>",
	Short: "Print the active theme's color for a preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.bridge.CurrentThemeColor(args[0])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				NextStep: "launchtheme colors list",
			}
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{"pref": args[0], "color": c})
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Hex())
		return nil
	},
}

var colorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the live color preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if colorsListStored {
			return listStoredPreferences(cmd, a)
		}

		values, err := a.bridge.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), values)
		}
		if hasTTY() {
			fmt.Fprintln(cmd.OutOrStdout(), components.RenderColorValues(styles.DefaultStyles(), values))
			return nil
		}
		return writeColorTable(cmd, values)
	},
}

func listStoredPreferences(cmd *cobra.Command, a *app) error {
	var rows [][]string
	var all []any
	for _, ns := range []string{prefs.NamespaceApp, prefs.NamespaceTheme} {
		stored, err := a.prefRepo.List(cmd.Context(), ns)
		if err != nil {
			return err
		}
		for _, p := range stored {
			all = append(all, p)
			rows = append(rows, []string{p.Namespace, p.Key, p.Display(), humanize.Time(p.UpdatedAt)})
		}
	}
	if IsJSONOutput() || IsJSONLOutput() {
		if all == nil {
			all = []any{}
		}
		return WriteOutput(cmd.OutOrStdout(), all)
	}
	return writeTable(cmd.OutOrStdout(), []string{"NAMESPACE", "KEY", "VALUE", "UPDATED"}, rows)
}

var colorsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Snapshot the live colors for the active theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.bridge.SaveUserColors(cmd.Context()); err != nil {
			return err
		}
		return reportAction(cmd, "saved", a.bridge.ActiveKey(), nil)
	},
}

var colorsRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the active theme's saved colors",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		existed, err := a.bridge.RestoreUserColors(cmd.Context())
		if err != nil {
			return err
		}
		if !existed && !IsJSONOutput() && !IsJSONLOutput() {
			fmt.Fprintln(cmd.OutOrStdout(), components.EmptySnapshot(a.bridge.ActiveKey()).Render(styles.DefaultStyles()))
			return nil
		}
		return reportAction(cmd, "restored", a.bridge.ActiveKey(), map[string]any{"snapshot": existed})
	},
}

var colorsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the live colors to the active theme and drop its snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.bridge.ResetUserColors(cmd.Context()); err != nil {
			return err
		}
		return reportAction(cmd, "reset", a.bridge.ActiveKey(), nil)
	},
}

var colorsSetCmd = &cobra.Command{
	Use:   "set <pref> <color>",
	Short: "Override one live color",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := theme.SlotFor(args[0]); err != nil {
			return &PreflightError{Message: err.Error(), NextStep: "launchtheme colors list"}
		}
		c, err := parseColorArg(args[1])
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.bridge.SetUserColor(cmd.Context(), args[0], c); err != nil {
			return err
		}
		return reportAction(cmd, "set", a.bridge.ActiveKey(), map[string]any{"pref": args[0], "color": c})
	},
}

func reportAction(cmd *cobra.Command, action, themeKey string, extra map[string]any) error {
	if IsJSONOutput() || IsJSONLOutput() {
		payload := map[string]any{"action": action, "theme": themeKey}
		for k, v := range extra {
			payload[k] = v
		}
		return WriteOutput(cmd.OutOrStdout(), payload)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Colors %s for %s.\n", action, themeKey)
	return nil
}

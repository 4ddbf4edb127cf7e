package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/tui"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

var pickPalette string

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringVar(&pickPalette, "palette", "default", "picker chrome (default, high-contrast)")
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a theme interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "the theme picker requires an interactive terminal",
				Hint:     "Run without --non-interactive and with a TTY, or use the themes subcommands",
				NextStep: "launchtheme themes switch <key>",
			}
		}
		base, ok := styles.Themes[pickPalette]
		if !ok {
			return fmt.Errorf("unknown palette %q", pickPalette)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := tui.Run(tui.Options{
			Registry:  a.registry,
			Resources: a.resources,
			Active:    a.bridge.ActiveKey(),
			Base:      base,
		})
		if err != nil {
			return err
		}
		if !result.Selected || result.Key == a.bridge.ActiveKey() {
			return nil
		}

		restored, err := a.bridge.SwitchTheme(cmd.Context(), a.icons, result.Key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s (restored saved colors: %s).\n", result.Key, formatYesNo(restored))
		return nil
	},
}

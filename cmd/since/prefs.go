// Prefs command: show or update user preferences.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/types"
)

var (
	prefsTheme   string
	prefsDensity string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or set preferences",
	Long: `Prefs without flags prints current preferences. With --theme or
--density it updates only the given fields.

Themes: system, light, dark. Densities: regular, compact.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "prefs:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		var patch types.PreferencesPatch
		if prefsTheme != "" {
			if !types.ValidTheme(prefsTheme) {
				return fmt.Errorf("invalid theme %q (valid: system, light, dark)", prefsTheme)
			}
			patch.Theme = &prefsTheme
		}
		if prefsDensity != "" {
			if !types.ValidDensity(prefsDensity) {
				return fmt.Errorf("invalid density %q (valid: regular, compact)", prefsDensity)
			}
			patch.Density = &prefsDensity
		}

		var prefs types.Preferences
		if patch.Theme != nil || patch.Density != nil {
			prefs, err = store.SetPreferences(patch)
			if err != nil {
				return fmt.Errorf("set preferences: %w", err)
			}
		} else {
			prefs, err = store.Preferences()
			if err != nil {
				return fmt.Errorf("get preferences: %w", err)
			}
		}

		if flagJSON {
			return printJSON(prefs)
		}
		fmt.Println("theme:  ", prefs.Theme)
		fmt.Println("density:", prefs.Density)
		return nil
	},
}

func init() {
	prefsCmd.Flags().StringVar(&prefsTheme, "theme", "", "color theme")
	prefsCmd.Flags().StringVar(&prefsDensity, "density", "", "list density")
}

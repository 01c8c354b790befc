// Reset command: wipe the database entirely.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/internal/sqlite"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start fresh",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirm("Delete ALL items, categories, and history?") {
			fmt.Println("Cancelled")
			return nil
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reset:", err)
			os.Exit(exitSysError)
		}

		store := sqlite.New(dataDir)
		if err := store.Reset(); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}

		fmt.Println("All data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
}

// Undo command: delete an item's most recent log entry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <item>",
	Short: "Remove the most recent completion of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "undo:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		last, err := store.LastLog(item.ItemID)
		if err != nil {
			return fmt.Errorf("find last log: %w", err)
		}
		if last == nil {
			return fmt.Errorf("%q has no completions to undo", item.Title)
		}

		if err := store.DeleteLog(last.LogID); err != nil {
			return fmt.Errorf("delete log: %w", err)
		}

		fmt.Printf("Removed completion of %q on %s\n", item.Title, last.Date)
		return nil
	},
}

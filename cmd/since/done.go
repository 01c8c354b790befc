// Done command: log a completion for an item.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/types"
)

var (
	doneDate string
	doneNote string
)

var doneCmd = &cobra.Command{
	Use:   "done <item>",
	Short: "Log that an item was done",
	Long: `Done records a completion for an item, today by default. The item may
be given by title or id.

Example:
  since done "Water the plants"
  since done "Dentist" --date 2026-08-20 --note "checkup"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, side, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "done:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		date := doneDate
		if date == "" {
			date = types.Today()
		}

		entry, err := store.AddLog(item.ItemID, date, doneNote)
		if err != nil {
			return fmt.Errorf("log completion: %w", err)
		}

		if item.CategoryID != "" {
			side.TrackCategoryUse(item.CategoryID)
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Printf("Done: %q on %s\n", item.Title, entry.Date)
		return nil
	},
}

func init() {
	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "completion date (default today)")
	doneCmd.Flags().StringVarP(&doneNote, "note", "n", "", "optional note")
}

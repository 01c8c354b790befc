// Add command: create a tracked item, optionally with a backdated
// first log.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/types"
)

var (
	addCategory string
	addDone     string
	addNote     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new item to track",
	Long: `Add creates a new tracked item. With --done the item starts with a
completion already logged on the given date instead of "never done".

Example:
  since add "Water the plants" --category Home
  since add "Dentist" --done 2026-02-14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		store, side, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		categoryID := ""
		if addCategory != "" {
			cat, err := findCategory(store, addCategory)
			if err != nil {
				return err
			}
			categoryID = cat.CategoryID
		}

		item, err := store.CreateItem(title, categoryID)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		if addDone != "" {
			if !types.ValidDate(addDone) {
				return fmt.Errorf("invalid --done date %q, expected YYYY-MM-DD", addDone)
			}
			if _, err := store.AddLog(item.ItemID, addDone, addNote); err != nil {
				return fmt.Errorf("log completion: %w", err)
			}
		}

		if categoryID != "" {
			side.TrackCategoryUse(categoryID)
		}
		// The new-item form draft is spent once the item exists.
		if err := side.ClearDraft(); err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
		}

		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Added %q (%s)\n", item.Title, item.ItemID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category name or id")
	addCmd.Flags().StringVar(&addDone, "done", "", "backdated completion date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addNote, "note", "", "note for the backdated completion")
}

// Item management commands: rename, move between categories, delete.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/types"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage tracked items",
}

var itemDeleteYes bool

var itemRenameCmd = &cobra.Command{
	Use:   "rename <item> <new-title>",
	Short: "Rename an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "item rename:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		title := args[1]
		if err := store.UpdateItem(item.ItemID, types.ItemPatch{Title: &title}); err != nil {
			return fmt.Errorf("rename item: %w", err)
		}
		fmt.Printf("Renamed %q to %q\n", item.Title, title)
		return nil
	},
}

var itemMoveCmd = &cobra.Command{
	Use:   "move <item> <category>",
	Short: "Move an item to another category (\"none\" clears it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, side, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "item move:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		categoryID := ""
		label := "no category"
		if args[1] != "none" {
			cat, err := findCategory(store, args[1])
			if err != nil {
				return err
			}
			categoryID = cat.CategoryID
			label = cat.Name
		}

		if err := store.UpdateItem(item.ItemID, types.ItemPatch{CategoryID: &categoryID}); err != nil {
			return fmt.Errorf("move item: %w", err)
		}
		if categoryID != "" {
			side.TrackCategoryUse(categoryID)
		}
		fmt.Printf("Moved %q to %s\n", item.Title, label)
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item>",
	Short: "Delete an item and all its completion history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "item delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		if !itemDeleteYes && !confirm(fmt.Sprintf("Delete %q and its entire history?", item.Title)) {
			fmt.Println("Cancelled")
			return nil
		}

		if err := store.DeleteItem(item.ItemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		fmt.Printf("Deleted %q\n", item.Title)
		return nil
	},
}

func init() {
	itemDeleteCmd.Flags().BoolVarP(&itemDeleteYes, "yes", "y", false, "skip confirmation")

	itemCmd.AddCommand(itemRenameCmd)
	itemCmd.AddCommand(itemMoveCmd)
	itemCmd.AddCommand(itemDeleteCmd)
}

// Category management commands: add, list, rename, recolor, reorder,
// delete with reassignment.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var (
	categoryAddColor   string
	categoryDeleteInto string
	categoryDeleteYes  bool
	categoryListRecent bool
)

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		color := categoryAddColor
		if color == "" {
			color = types.PaletteColorFor(args[0])
		}

		cat, err := store.CreateCategory(args[0], color)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}

		if flagJSON {
			return printJSON(cat)
		}
		fmt.Printf("Added category %q (%s)\n", cat.Name, cat.CategoryID)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, side, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cats, err := store.Categories()
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		if categoryListRecent {
			cats = biasByRecentUse(cats, side.RecentCategoryIDs())
		}

		if flagJSON {
			return printJSON(cats)
		}

		table := uitable.New()
		table.AddRow("NAME", "COLOR", "ID")
		for _, c := range cats {
			table.AddRow(colorize(c.Color, c.Name), c.Color, c.CategoryID)
		}
		fmt.Println(table)
		return nil
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <category> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category rename:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cat, err := findCategory(store, args[0])
		if err != nil {
			return err
		}

		name := args[1]
		if err := store.UpdateCategory(cat.CategoryID, types.CategoryPatch{Name: &name}); err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		fmt.Printf("Renamed %q to %q\n", cat.Name, name)
		return nil
	},
}

var categoryRecolorCmd = &cobra.Command{
	Use:   "recolor <category> <color>",
	Short: "Change a category's color token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category recolor:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cat, err := findCategory(store, args[0])
		if err != nil {
			return err
		}

		color := args[1]
		if err := store.UpdateCategory(cat.CategoryID, types.CategoryPatch{Color: &color}); err != nil {
			return fmt.Errorf("recolor category: %w", err)
		}
		fmt.Printf("Recolored %q to %s\n", cat.Name, color)
		return nil
	},
}

var categoryReorderCmd = &cobra.Command{
	Use:   "reorder <category>...",
	Short: "Set the display order of categories",
	Long: `Reorder rewrites the manual sort order: each listed category gets the
position it appears at. Categories may be given by name or id.

Example:
  since category reorder Health Home Fitness`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category reorder:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		ids := make([]string, 0, len(args))
		for _, arg := range args {
			cat, err := findCategory(store, arg)
			if err != nil {
				return err
			}
			ids = append(ids, cat.CategoryID)
		}

		if err := store.ReorderCategories(ids); err != nil {
			return fmt.Errorf("reorder categories: %w", err)
		}
		fmt.Println("Reordered", strings.Join(args, ", "))
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category>",
	Short: "Delete a category, reassigning its items",
	Long: `Delete removes a category. Items in it move to the category named by
--into, or to an auto-created "Uncategorized" category when --into is
omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cat, err := findCategory(store, args[0])
		if err != nil {
			return err
		}

		var replacement *types.Category
		if categoryDeleteInto != "" {
			replacement, err = findCategory(store, categoryDeleteInto)
			if err != nil {
				return err
			}
		} else {
			replacement, err = ensureUncategorized(store)
			if err != nil {
				return fmt.Errorf("ensure fallback category: %w", err)
			}
		}
		if replacement.CategoryID == cat.CategoryID {
			return fmt.Errorf("cannot move items into the category being deleted")
		}

		if !categoryDeleteYes && !confirm(fmt.Sprintf("Delete category %q (items move to %q)?", cat.Name, replacement.Name)) {
			fmt.Println("Cancelled")
			return nil
		}

		if err := store.DeleteCategory(cat.CategoryID, replacement.CategoryID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		fmt.Printf("Deleted %q; items moved to %q\n", cat.Name, replacement.Name)
		return nil
	},
}

// biasByRecentUse moves recently used categories to the front, keeping
// the manual order among the rest.
func biasByRecentUse(cats []types.Category, recentIDs []string) []types.Category {
	byID := make(map[string]types.Category, len(cats))
	for _, c := range cats {
		byID[c.CategoryID] = c
	}

	out := make([]types.Category, 0, len(cats))
	seen := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		if c, ok := byID[id]; ok && !seen[id] {
			out = append(out, c)
			seen[id] = true
		}
	}
	for _, c := range cats {
		if !seen[c.CategoryID] {
			out = append(out, c)
		}
	}
	return out
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "", "color token (default from palette)")
	categoryListCmd.Flags().BoolVar(&categoryListRecent, "recent", false, "bias ordering by recent use")
	categoryDeleteCmd.Flags().StringVar(&categoryDeleteInto, "into", "", "category to receive the deleted category's items")
	categoryDeleteCmd.Flags().BoolVarP(&categoryDeleteYes, "yes", "y", false, "skip confirmation")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryRecolorCmd)
	categoryCmd.AddCommand(categoryReorderCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

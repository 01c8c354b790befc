// List command: the joined item/category/last-log view with sort,
// category filter, and search.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/view"
)

var (
	listSort     string
	listCategory string
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked items with time since last done",
	Long: `List shows every tracked item with its category and how long ago it
was last done.

Sort modes: recently-done (default), oldest-first, alphabetical, never-done.

Example:
  since list
  since list --sort never-done
  since list --category Home --search plant`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := view.ParseSortMode(listSort)
		if err != nil {
			return err
		}

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		entries, err := loadEntries(store)
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}

		categoryID := ""
		if listCategory != "" {
			cat, err := findCategory(store, listCategory)
			if err != nil {
				return err
			}
			categoryID = cat.CategoryID
		}

		entries = view.Filter(entries, listSearch, categoryID)
		view.Sort(entries, mode)

		if flagJSON {
			type row struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Category string `json:"category"`
				LastDone string `json:"lastDone,omitempty"`
			}
			rows := make([]row, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, row{
					ID:       e.Item.ItemID,
					Title:    e.Item.Title,
					Category: e.CategoryName(),
					LastDone: e.LastDate(),
				})
			}
			return printJSON(rows)
		}

		if len(entries) == 0 {
			fmt.Println("Nothing tracked yet. Try: since add \"Water the plants\"")
			return nil
		}

		now := time.Now()
		table := uitable.New()
		table.AddRow("ITEM", "CATEGORY", "LAST DONE")
		for _, e := range entries {
			last := "never"
			if d := e.LastDate(); d != "" {
				days, err := view.DaysSince(d, now)
				if err == nil {
					last = view.Ago(days)
				} else {
					last = d
				}
			}
			catName := e.CategoryName()
			if e.Category != nil {
				catName = colorize(e.Category.Color, catName)
			}
			table.AddRow(e.Item.Title, catName, last)
		}
		fmt.Println(table)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", string(view.SortRecentlyDone), "sort mode")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category name or id")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "search titles, categories, and notes")
}

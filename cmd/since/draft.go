// Draft command: inspect or update the auto-saved new-item draft.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/internal/sidecar"
)

var (
	draftTitle    string
	draftCategory string
	draftClear    bool
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show, save, or clear the new-item draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, side, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "draft:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if draftClear {
			if err := side.ClearDraft(); err != nil {
				return err
			}
			fmt.Println("Draft cleared")
			return nil
		}

		if draftTitle != "" || draftCategory != "" {
			categoryID := ""
			if draftCategory != "" {
				cat, err := findCategory(store, draftCategory)
				if err != nil {
					return err
				}
				categoryID = cat.CategoryID
			}
			if err := side.SaveDraft(sidecar.Draft{Title: draftTitle, CategoryID: categoryID}); err != nil {
				return err
			}
			fmt.Println("Draft saved")
			return nil
		}

		d, err := side.LoadDraft()
		if err != nil {
			return err
		}
		if d == nil {
			fmt.Println("No draft")
			return nil
		}
		if flagJSON {
			return printJSON(d)
		}
		fmt.Println("title:   ", d.Title)
		fmt.Println("category:", d.CategoryID)
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftTitle, "title", "", "draft title")
	draftCmd.Flags().StringVar(&draftCategory, "category", "", "draft category name or id")
	draftCmd.Flags().BoolVar(&draftClear, "clear", false, "discard the draft")
}

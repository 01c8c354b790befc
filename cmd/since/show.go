// Show command: item detail with completion history and statistics.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/view"
)

var showCmd = &cobra.Command{
	Use:   "show <item>",
	Short: "Show an item's completion history and statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := findItem(store, args[0])
		if err != nil {
			return err
		}

		logs, err := store.LogsByItem(item.ItemID)
		if err != nil {
			return fmt.Errorf("load logs: %w", err)
		}
		stats := view.ComputeStats(logs)

		if flagJSON {
			return printJSON(map[string]any{
				"item":  item,
				"logs":  logs,
				"stats": stats,
			})
		}

		fmt.Println(item.Title)
		if len(logs) == 0 {
			fmt.Println("  never done")
			return nil
		}

		now := time.Now()
		if days, err := view.DaysSince(logs[0].Date, now); err == nil {
			fmt.Println("  last done:", view.Ago(days))
		}
		fmt.Println("  total:    ", stats.Total)
		if stats.Total >= 2 {
			fmt.Printf("  average:   every %d days\n", stats.AverageDays)
			fmt.Printf("  shortest:  %d days\n", stats.ShortestDays)
		} else {
			fmt.Println("  average:   –")
			fmt.Println("  shortest:  –")
		}

		table := uitable.New()
		table.AddRow("DATE", "NOTE")
		for _, l := range logs {
			table.AddRow(l.Date, l.Note)
		}
		fmt.Println(table)
		return nil
	},
}

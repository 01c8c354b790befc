// Shared helpers for since CLI commands: store wiring, entity lookup,
// and output formatting.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sinceapp/since/internal/paths"
	"github.com/sinceapp/since/internal/sidecar"
	"github.com/sinceapp/since/internal/sqlite"
	"github.com/sinceapp/since/pkg/types"
	"github.com/sinceapp/since/pkg/view"
)

// openStore is the composition root: it resolves the data directory,
// wires the sidecar as the store's theme mirror, and returns both. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, *sidecar.Sidecar, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	side := sidecar.New(paths.SidecarDir(dataDir))
	store := sqlite.New(dataDir)
	store.SetThemeMirror(side)

	if err := store.Open(); err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.SeedDefaults(); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}

	return store, side, nil
}

// findItem resolves an item by id or by case-insensitive title.
func findItem(store *sqlite.Store, arg string) (*types.Item, error) {
	items, err := store.Items()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ItemID == arg {
			return &items[i], nil
		}
	}
	lower := strings.ToLower(arg)
	for i := range items {
		if strings.ToLower(items[i].Title) == lower {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("item %q not found", arg)
}

// findCategory resolves a category by id or by case-insensitive name.
func findCategory(store *sqlite.Store, arg string) (*types.Category, error) {
	cats, err := store.Categories()
	if err != nil {
		return nil, err
	}

	for i := range cats {
		if cats[i].CategoryID == arg {
			return &cats[i], nil
		}
	}
	lower := strings.ToLower(arg)
	for i := range cats {
		if strings.ToLower(cats[i].Name) == lower {
			return &cats[i], nil
		}
	}
	return nil, fmt.Errorf("category %q not found", arg)
}

// ensureUncategorized returns the "Uncategorized" fallback category,
// creating it if it does not exist yet. Used when a category is deleted
// without an explicit replacement, so items never dangle.
func ensureUncategorized(store *sqlite.Store) (*types.Category, error) {
	cats, err := store.Categories()
	if err != nil {
		return nil, err
	}
	for i := range cats {
		if cats[i].Name == view.Uncategorized {
			return &cats[i], nil
		}
	}
	cat, err := store.CreateCategory(view.Uncategorized, types.FallbackColor)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// loadEntries builds the joined view entries for every item.
func loadEntries(store *sqlite.Store) ([]view.Entry, error) {
	items, err := store.Items()
	if err != nil {
		return nil, err
	}
	cats, err := store.Categories()
	if err != nil {
		return nil, err
	}

	lastByItem := make(map[string]*types.LogEntry, len(items))
	notesByItem := make(map[string][]string, len(items))
	for _, it := range items {
		logs, err := store.LogsByItem(it.ItemID)
		if err != nil {
			return nil, err
		}
		if len(logs) > 0 {
			last := logs[0]
			lastByItem[it.ItemID] = &last
		}
		for _, l := range logs {
			if l.Note != "" {
				notesByItem[it.ItemID] = append(notesByItem[it.ItemID], l.Note)
			}
		}
	}

	return view.Join(items, cats, lastByItem, notesByItem), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// categoryColors maps palette tokens to terminal colors.
var categoryColors = map[string]*color.Color{
	"amber":   color.New(color.FgYellow),
	"emerald": color.New(color.FgGreen),
	"sky":     color.New(color.FgCyan),
	"violet":  color.New(color.FgMagenta),
	"rose":    color.New(color.FgRed),
	"slate":   color.New(color.FgWhite),
	"gray":    color.New(color.FgHiBlack),
}

// colorize renders s in the category's palette color when the terminal
// supports it.
func colorize(token, s string) string {
	if c, ok := categoryColors[token]; ok {
		return c.Sprint(s)
	}
	return s
}

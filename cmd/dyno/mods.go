package main

import (
	"fmt"

	"dyno/internal/catalog"

	"github.com/spf13/cobra"
)

var modsCategory string

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List catalog modifications",
	Long: `List the modifications available in the catalog, optionally
filtered by category.

Examples:
  dyno mods
  dyno mods --category exhaust
  dyno mods --category tune --format json`,
	RunE: runMods,
}

func init() {
	modsCmd.Flags().StringVar(&modsCategory, "category", "",
		"Filter by category (intake, exhaust, tune, forced-induction, ...)")
	rootCmd.AddCommand(modsCmd)
}

func runMods(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	var mods []catalog.Modification
	if modsCategory != "" {
		mods = store.ModificationsByCategory(catalog.Category(modsCategory))
		if len(mods) == 0 {
			return fmt.Errorf("no modifications in category: %s", modsCategory)
		}
	} else {
		mods = store.Modifications()
	}

	out, err := FormatResponse(mods, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

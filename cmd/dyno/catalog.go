package main

import (
	"fmt"

	"dyno/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	importMods     string
	importVehicles string
	importDB       string
	importNoBuilt  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the modification and vehicle catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog files into the sqlite store",
	Long: `Import modification (TOML) and vehicle (YAML) catalog files into a
sqlite database. Subsequent commands read the database instead of
re-parsing files.

Examples:
  dyno catalog import --db .dyno/catalog.db
  dyno catalog import --mods shop-catalog.toml --db .dyno/catalog.db
  dyno catalog import --mods custom.toml --vehicles fleet.yaml --no-builtin --db custom.db`,
	RunE: runCatalogImport,
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog row counts from the sqlite store",
	RunE:  runCatalogStatus,
}

func init() {
	catalogImportCmd.Flags().StringVar(&importMods, "mods", "", "Modification catalog TOML file")
	catalogImportCmd.Flags().StringVar(&importVehicles, "vehicles", "", "Vehicle fleet YAML file")
	catalogImportCmd.Flags().StringVar(&importDB, "db", "", "Destination sqlite database (default from config)")
	catalogImportCmd.Flags().BoolVar(&importNoBuilt, "no-builtin", false, "Exclude the builtin catalog")
	catalogStatusCmd.Flags().StringVar(&importDB, "db", "", "Sqlite database to inspect (default from config)")
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	dbPath := importDB
	if dbPath == "" {
		dbPath = cfg.Catalog.DatabasePath
	}
	if dbPath == "" {
		return fmt.Errorf("no database path: pass --db or set catalog.databasePath in config")
	}

	store, err := catalog.Load(catalog.LoadOptions{
		ModificationsPath: importMods,
		VehiclesPath:      importVehicles,
		SkipBuiltin:       importNoBuilt,
	})
	if err != nil {
		return err
	}

	db, err := catalog.OpenDB(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.ImportStore(store); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	mods, vehicles, err := db.Counts()
	if err != nil {
		return err
	}

	fmt.Printf("Imported catalog into %s\n", dbPath)
	fmt.Printf("  Modifications: %d\n", mods)
	fmt.Printf("  Vehicles:      %d\n", vehicles)

	return nil
}

func runCatalogStatus(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	dbPath := importDB
	if dbPath == "" {
		dbPath = cfg.Catalog.DatabasePath
	}
	if dbPath == "" {
		return fmt.Errorf("no database path: pass --db or set catalog.databasePath in config")
	}

	db, err := catalog.OpenDB(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	mods, vehicles, err := db.Counts()
	if err != nil {
		return err
	}

	fmt.Printf("Catalog database: %s\n", dbPath)
	fmt.Printf("  Modifications: %d\n", mods)
	fmt.Printf("  Vehicles:      %d\n", vehicles)

	return nil
}

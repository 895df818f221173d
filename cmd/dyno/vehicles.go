package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles [vehicle-id]",
	Short: "List catalog vehicles or show one vehicle's stock sheet",
	Long: `List all vehicles in the catalog, or show the full stock
specification of a single vehicle.

Examples:
  dyno vehicles
  dyno vehicles gti-mk7
  dyno vehicles gtr-r35 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVehicles,
}

func init() {
	rootCmd.AddCommand(vehiclesCmd)
}

func runVehicles(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	var resp interface{}
	if len(args) == 1 {
		vehicle, found := store.Vehicle(args[0])
		if !found {
			return fmt.Errorf("vehicle not found: %s", args[0])
		}
		resp = &vehicle
	} else {
		resp = store.Vehicles()
	}

	out, err := FormatResponse(resp, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

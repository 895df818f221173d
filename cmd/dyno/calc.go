package main

import (
	"fmt"

	"dyno/internal/calc"
	"dyno/internal/output"

	"github.com/spf13/cobra"
)

var calcImpactOnly bool

var calcCmd = &cobra.Command{
	Use:   "calc <vehicle-id> [mod-key...]",
	Short: "Calculate the performance impact of modifications",
	Long: `Calculate the projected performance of a vehicle with a set of
modifications applied.

By default the full profile is shown: projected output, acceleration,
braking, lateral grip, and build scores. Use --impact to show only the
horsepower calculation with its per-modification breakdown.

Examples:
  dyno calc gti-mk7 stage2-tune downpipe intake
  dyno calc brz-zd8 supercharger-roots --format json
  dyno calc wrx-va stage1-tune --impact`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&calcImpactOnly, "impact", false,
		"Show only the horsepower impact, without derived metrics")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	vehicleID := args[0]
	keys := args[1:]

	vehicle, found := store.Vehicle(vehicleID)
	if !found {
		return fmt.Errorf("vehicle not found: %s (run 'dyno vehicles' to list)", vehicleID)
	}

	calculator := calc.New(store)

	var resp interface{}
	if calcImpactOnly {
		result := calculator.Compute(&vehicle, keys)
		output.NormalizeResult(result)
		resp = result
	} else {
		profile := calculator.ComputeProfile(&vehicle, keys)
		output.NormalizeProfile(profile)
		resp = profile
	}

	out, err := FormatResponse(resp, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

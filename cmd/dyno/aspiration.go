package main

import (
	"fmt"
	"strings"

	"dyno/internal/aspiration"

	"github.com/spf13/cobra"
)

var aspirationCmd = &cobra.Command{
	Use:   "aspiration <engine-description>",
	Short: "Classify an engine description into an aspiration type",
	Long: `Classify a free-form engine description string into one of the
aspiration types: na, turbo, twin-turbo, supercharged, twin-supercharged.

Examples:
  dyno aspiration "2.0L twin-scroll turbo I4"
  dyno aspiration "3.8L twin turbo V6"
  dyno aspiration "5.0L V8"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAspiration,
}

func init() {
	rootCmd.AddCommand(aspirationCmd)
}

func runAspiration(cmd *cobra.Command, args []string) error {
	engine := strings.Join(args, " ")
	asp := aspiration.Classify(engine)

	if outputFormat() == FormatJSON {
		out, err := FormatResponse(map[string]interface{}{
			"engine":     engine,
			"aspiration": asp,
			"label":      asp.Label(),
			"forced":     asp.Forced(),
		}, FormatJSON)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Printf("%s -> %s (%s)\n", engine, asp, asp.Label())
	return nil
}

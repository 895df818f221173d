package main

import (
	"fmt"
	"os"

	"dyno/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dyno configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to .dyno/config.json",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(cwd); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s/.dyno/config.json\n", cwd)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	out, err := FormatResponse(cfg, FormatJSON)
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

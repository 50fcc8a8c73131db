package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavenote/speechsubs/internal/config"
)

// NewConfigCmd creates the config subcommand
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		RunE:  runConfigShow,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE:  runConfigInit,
	}

	cmd.AddCommand(initCmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	cfg := app.Config

	region := cfg.Azure.Region
	if region == "" {
		region = "(not set)"
	}
	keyState := "not set"
	if cfg.Azure.Key != "" {
		keyState = "set"
	}

	fmt.Println()
	fmt.Printf("Config file: %s\n", config.ConfigPath())
	fmt.Printf("  azure.region:      %s\n", region)
	fmt.Printf("  azure.key:         %s\n", keyState)
	fmt.Printf("  defaults.voice:    %s\n", cfg.Defaults.Voice)
	fmt.Printf("  defaults.language: %s\n", cfg.Defaults.Language)
	fmt.Printf("  cache TTL:         %s\n", cfg.Defaults.CacheTTL)
	fmt.Println()

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := cfg.SaveDefault(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", config.ConfigPath())
	fmt.Println("Set azure.key and azure.region there, or export AZURE_SPEECH_KEY and AZURE_SPEECH_REGION.")
	return nil
}

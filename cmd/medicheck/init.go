package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicheck/medicheck/internal/application/handlers"
	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Creates medicheck.yaml (or the file named by --config) with commented defaults.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	result, err := handlers.NewInitHandler().Handle(globalConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Provider: %s (%s)\n", result.Provider, result.Model)
	fmt.Printf("Set %s before running 'medicheck serve'.\n", config.CredentialEnv(result.Provider))

	return nil
}

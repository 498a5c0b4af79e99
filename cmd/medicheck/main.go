// Package main provides the entry point for the medicheck server and CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalConfig string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "medicheck",
		Short:         "Fact-check medical claims on web pages with an LLM",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", "", "Config file (default ./medicheck.yaml)")

	rootCmd.AddCommand(
		newServeCmd(),
		newCheckCmd(),
		newChatCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Package main provides the entry point for the reqlens CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version          = "0.1.0-dev"
	globalConfigPath string
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
	// A missing .env is fine; credentials may come from the environment.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "reqlens",
		Short:   "Extract constraints, redundancies, and contradictions from free-form text via LLM providers",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfigPath, "config", "c", "", "Path to config file (default reqlens.yaml)")

	rootCmd.AddCommand(
		newServeCmd(),
		newAnalyzeCmd(),
		newExtractCmd(),
		newProvidersCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

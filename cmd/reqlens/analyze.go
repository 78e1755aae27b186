package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reqlens/reqlens/internal/domain/services"
	"github.com/reqlens/reqlens/internal/infrastructure/config"
	"github.com/reqlens/reqlens/internal/infrastructure/providers"
)

func newAnalyzeCmd() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run a full analysis on a text file",
		Long:  "Analyzes the file (or stdin when the argument is \"-\") for constraints, redundancies, and contradictions and prints the result as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, text, err := buildService(args[0])
			if err != nil {
				return err
			}

			result, err := service.Analyze(cmd.Context(), provider, text)
			if err != nil {
				return fmt.Errorf("analyzing: %w", err)
			}

			return printJSON(result)
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "openai", "Provider to use (openai, anthropic, gemini, mistral, cohere)")

	return cmd
}

func newExtractCmd() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract constraints from a text file as a flat list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, text, err := buildService(args[0])
			if err != nil {
				return err
			}

			constraints, err := service.ExtractConstraints(cmd.Context(), provider, text)
			if err != nil {
				return fmt.Errorf("extracting: %w", err)
			}

			for _, c := range constraints {
				fmt.Printf("- %s\n", c.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "openai", "Provider to use (openai, anthropic, gemini, mistral, cohere)")

	return cmd
}

// buildService loads config, reads the input text, and assembles the
// service the same way the HTTP path does.
func buildService(path string) (*services.AnalysisService, string, error) {
	cfg, err := config.Load(globalConfigPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	text, err := readInput(path)
	if err != nil {
		return nil, "", err
	}

	return services.NewAnalysisService(providers.NewDispatcher(cfg)), text, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqlens/reqlens/internal/infrastructure/config"
	"github.com/reqlens/reqlens/internal/infrastructure/providers"
)

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List registered providers and whether their credentials are configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(globalConfigPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			for _, name := range providers.Names() {
				p, ok := providers.Lookup(name)
				if !ok {
					continue
				}
				status := "not configured"
				if cfg.Credential(p.Name(), p.CredentialKey()) != "" {
					status = "configured"
				}
				fmt.Printf("%-10s %-28s %s (%s)\n", p.Name(), p.DefaultModel(), status, p.CredentialKey())
			}
			return nil
		},
	}
}

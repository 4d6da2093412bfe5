package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xltables-go/internal/bootstrap"
	"github.com/ukaji3/xltables-go/internal/config"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for uploading and reading files",
		Long: `Run the HTTP API under /api/excel.

Environment:
` + config.Usage(),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			bootstrap.Run(cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (yaml, json, toml or .env)")

	return cmd
}

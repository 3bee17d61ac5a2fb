package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/helixml/almanac"
	"github.com/helixml/almanac/internal/log"
	"github.com/helixml/almanac/internal/mcp"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants list and run solutions and query almanac documents.
Configuration is loaded from environment variables and .env file. Logs go to
stderr so stdout carries only protocol messages.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStdio(cmd.Context(), envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(ctx context.Context, envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if err := prepareDataDir(cfg); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	slogger := log.NewLogger(cfg).Slog()
	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := almanac.New(ctx, clientOptions(cfg, slogger)...)
	if err != nil {
		return fmt.Errorf("create almanac client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close almanac client", slog.Any("error", err))
		}
	}()

	return mcp.NewServer(client.Runner, client.Almanac, version, slogger).ServeStdio()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helixml/almanac"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/internal/log"
)

func runCmd() *cobra.Command {
	var (
		envFile   string
		inputFile string
		noCache   bool
		refresh   bool
	)

	cmd := &cobra.Command{
		Use:   "run DAY PART",
		Short: "Run one part of a puzzle day",
		Long: `Run one part of a puzzle day and print the answer.

Input is read from --input when given. Otherwise it is downloaded using the
session TOKEN and cached in the configured database unless --no-cache is set.

Environment variables:
  TOKEN                Session token for input downloads
  DATA_DIR             Data directory (default: ~/.almanac)
  DB_URL               Input cache database (default: sqlite:///{data_dir}/almanac.db)
  LOG_LEVEL            Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT           Log format: pretty, json (default: pretty)
  AOC_BASE_URL         Puzzle site base URL
  AOC_YEAR             Puzzle year (default: 2023)
  AOC_TIMEOUT          Download timeout in seconds (default: 30)
  AOC_CACHE_ENABLED    Cache downloaded inputs (default: true)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}
			part, err := puzzle.ParsePart(args[1])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runSolve(ctx, cmd, runFlags{envFile: envFile, inputFile: inputFile, noCache: noCache, refresh: refresh}, day, part)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&inputFile, "input", "", "Read puzzle input from this file instead of downloading it")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Do not read or write the input cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Drop the cached input and download it again")

	return cmd
}

type runFlags struct {
	envFile   string
	inputFile string
	noCache   bool
	refresh   bool
}

func runSolve(ctx context.Context, cmd *cobra.Command, flags runFlags, day int, part puzzle.Part) error {
	cfg, err := loadConfig(flags.envFile)
	if err != nil {
		return err
	}

	slogger := log.NewLogger(cfg).Slog()

	opts := clientOptions(cfg, slogger)
	switch {
	case flags.inputFile != "":
		opts = append(opts, almanac.WithInputFile(flags.inputFile))
	case flags.noCache:
		opts = append(opts, almanac.WithoutCache())
	default:
		if err := prepareDataDir(cfg); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	client, err := almanac.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create almanac client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close almanac client", slog.Any("error", err))
		}
	}()

	name := ""
	for _, info := range client.Runner.Solutions() {
		if info.Day == day {
			name = info.Name
		}
	}
	if name == "" {
		return fmt.Errorf("%w: day %d", puzzle.ErrNotImplemented, day)
	}

	if flags.refresh {
		if err := client.ForgetInput(ctx, day); err != nil {
			return err
		}
	}
	input, err := client.Runner.Load(ctx, day)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "[*] Running: %s (%d-%s)\n", name, day, part.Upper())

	result, err := client.Runner.RunInput(ctx, day, part, input)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "[*] Out: %s (took %s)\n", result.Answer, puzzle.FormatDuration(result.Elapsed))
	return nil
}

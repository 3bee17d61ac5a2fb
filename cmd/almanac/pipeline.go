package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/application/solution"
	"github.com/helixml/almanac/domain/almanac"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/infrastructure/almanacdoc"
	"github.com/helixml/almanac/infrastructure/input"
	"github.com/helixml/almanac/internal/config"
	"github.com/helixml/almanac/internal/log"
)

func pipelineCmd() *cobra.Command {
	var (
		envFile   string
		file      string
		part      string
		workers   int
		intervals bool
	)

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Find the lowest reachable value of an almanac document",
		Long: `Push the seeds of an almanac document through its stages and print the
lowest reachable value.

The document format follows the file extension: .yaml/.yml and .json hold a
structured document, .txt holds raw puzzle text. Part a treats every seed as
a single value; part b reads the seeds as start/length pairs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := service.ParseSeedMode(part)
			if err != nil {
				return err
			}
			return runPipeline(cmd.Context(), cmd, envFile, file, mode, workers, intervals)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Almanac document (.yaml, .yml, .json or .txt)")
	cmd.Flags().StringVarP(&part, "part", "p", "a", "Seed interpretation: a (points) or b (ranges)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel workers per stage (default: WORKERS or 1)")
	cmd.Flags().BoolVar(&intervals, "intervals", false, "Also print the reachable intervals")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPipeline(ctx context.Context, cmd *cobra.Command, envFile, file string, mode service.SeedMode, workers int, showIntervals bool) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg = cfg.Apply(config.WithWorkers(workers))
	}

	doc, err := readDocument(file)
	if err != nil {
		return err
	}

	slogger := log.NewLogger(cfg).Slog()
	svc := service.NewAlmanac(cfg.Workers(), slogger)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "[*] Running: %s (%s, %d stages)\n", filepath.Base(file), mode, len(doc.Stages))

	result, err := svc.Minimum(ctx, doc, mode)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "[*] Out: %d (took %s)\n", result.Value, puzzle.FormatDuration(result.Elapsed))
	if showIntervals {
		for _, iv := range result.Intervals {
			_, _ = fmt.Fprintf(out, "    %s\n", iv)
		}
	}
	return nil
}

// readDocument loads a structured document, or parses raw puzzle text for .txt files.
func readDocument(path string) (almanac.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return almanac.Document{}, fmt.Errorf("read %s: %w", path, err)
		}
		return solution.ParseAlmanac(input.Normalize(string(raw)))
	}
	return almanacdoc.DecodeFile(path)
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/carnevale-tools/card-parser/internal/common"
	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/export"
	"github.com/carnevale-tools/card-parser/internal/extract"
	"github.com/carnevale-tools/card-parser/internal/ingest"
	"github.com/carnevale-tools/card-parser/internal/pipeline"
	"github.com/carnevale-tools/card-parser/internal/reference"
)

// factionSummary is one faction's line in the batch summary document.
type factionSummary struct {
	RunID          string `json:"run_id"`
	CardsParsed    int    `json:"cards_parsed"`
	OutputFile     string `json:"output_file"`
	FactionAbility string `json:"faction_ability"`
	Passed         int    `json:"passed"`
	Total          int    `json:"total"`
}

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	var (
		dir       = flag.String("dir", cfg.Paths.TextDir, "directory of *_extracted_text.json files (required)")
		abilities = flag.String("abilities", cfg.Paths.ReferencePath, "reference ability dictionary JSON")
		out       = flag.String("out", cfg.Paths.OutDir, "output directory (defaults to --dir)")
		xlsx      = flag.String("xlsx", "", "optional XLSX roster output path")
		workers   = flag.Int("workers", cfg.Parser.Workers, "page-parse fan-out per faction")
		watch     = flag.Bool("watch", false, "keep running and re-parse factions whose text files change")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = *dir
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ref, err := reference.Load(*abilities, logger)
	if err != nil {
		logger.Error("failed to load reference dictionary", "error", err)
		os.Exit(1)
	}

	proc := pipeline.NewProcessor(logger, ref, *workers)
	var source extract.PageSource = extract.JSONSource{}

	runAll := func() bool {
		files, err := ingest.Discover(*dir)
		if err != nil {
			logger.Error("discover faction files", "dir", *dir, "error", err)
			return false
		}
		if len(files) == 0 {
			logger.Warn("no faction text files found", "dir", *dir)
		}

		allPassed := true
		summary := map[string]factionSummary{}
		var records []*entity.FactionRecord

		for _, f := range files {
			result, err := runFaction(ctx, proc, source, f, *out, logger)
			if err != nil {
				logger.Error("faction run failed", "faction", f.Faction, "error", err)
				allPassed = false
				continue
			}
			if !result.Report.OK() {
				allPassed = false
			}
			records = append(records, result.Record)
			summary[f.Faction] = factionSummary{
				RunID:          result.RunID.String(),
				CardsParsed:    len(result.Record.Cards),
				OutputFile:     outputPath(*out, f.Faction),
				FactionAbility: result.Record.FactionAbility.Name,
				Passed:         result.Report.Passed,
				Total:          result.Report.Total,
			}
		}

		if err := writeJSON(filepath.Join(*out, "parsing_summary.json"), summary); err != nil {
			logger.Error("write summary", "error", err)
			allPassed = false
		}

		if *xlsx != "" && len(records) > 0 {
			svc := export.NewService(logger)
			data, err := svc.RosterXLSX(records)
			if err != nil {
				logger.Error("export roster", "error", err)
				allPassed = false
			} else if err := os.WriteFile(*xlsx, data, 0o644); err != nil {
				logger.Error("write roster", "path", *xlsx, "error", err)
				allPassed = false
			}
		}
		return allPassed
	}

	ok := runAll()

	if !*watch {
		if !ok {
			os.Exit(1)
		}
		return
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Dir:      *dir,
		Debounce: cfg.Watch.Debounce,
	}, logger)
	if err != nil {
		logger.Error("start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for changes", "dir", *dir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, open := <-errCh:
			if !open {
				return
			}
			logger.Error("watch error", "error", err)
		case path, open := <-evCh:
			if !open {
				return
			}
			f := ingest.FactionFile{Faction: ingest.FactionName(path), Path: path}
			if _, err := runFaction(ctx, proc, source, f, *out, logger); err != nil {
				logger.Error("faction run failed", "faction", f.Faction, "error", err)
			}
		}
	}
}

// runFaction parses and validates one faction document and writes its JSON.
func runFaction(
	ctx context.Context,
	proc *pipeline.Processor,
	source extract.PageSource,
	f ingest.FactionFile,
	outDir string,
	logger *slog.Logger,
) (pipeline.Result, error) {
	pages, err := source.Pages(ctx, f.Path)
	if err != nil {
		return pipeline.Result{}, err
	}

	result, err := proc.Run(ctx, f.Faction, pages)
	if err != nil {
		return pipeline.Result{}, err
	}

	outPath := outputPath(outDir, f.Faction)
	if err := writeJSON(outPath, result.Record); err != nil {
		return pipeline.Result{}, err
	}
	logger.Info("faction parsed",
		"faction", f.Faction,
		"cards", len(result.Record.Cards),
		"page_errors", len(result.PageErrors),
		"passed", result.Report.Passed,
		"total", result.Report.Total,
		"output", outPath,
	)
	for _, msg := range result.Report.Errors {
		logger.Warn("validation finding", "faction", f.Faction, "finding", msg)
	}
	return result, nil
}

func outputPath(outDir, faction string) string {
	return filepath.Join(outDir, strings.ToLower(faction)+"_cards.json")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

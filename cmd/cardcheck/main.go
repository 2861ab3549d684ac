package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/carnevale-tools/card-parser/internal/common"
	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/extract"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/validate"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	var (
		cards     = flag.String("cards", "", "parsed faction JSON to validate (required)")
		text      = flag.String("text", "", "extracted-text pages JSON the faction was parsed from (required)")
		abilities = flag.String("abilities", cfg.Paths.ReferencePath, "reference ability dictionary JSON")
	)
	flag.Parse()

	if *cards == "" || *text == "" {
		printError("Error: --cards and --text are required\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	record, err := loadRecord(*cards)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	pages, err := extract.JSONSource{}.Pages(context.Background(), *text)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ref, err := reference.Load(*abilities, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	report := validate.NewEngine(record, pages, ref).Run()

	fmt.Printf("%s: %d/%d checks passed\n", record.Faction, report.Passed, report.Total)
	for _, w := range report.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	if !report.OK() {
		os.Exit(1)
	}
}

func loadRecord(path string) (*entity.FactionRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	if err := validate.ValidateDocument(raw); err != nil {
		return nil, fmt.Errorf("cards %s: %w", path, err)
	}
	var record entity.FactionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode cards %s: %w", path, err)
	}
	return &record, nil
}

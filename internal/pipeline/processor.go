// Package pipeline coordinates the per-page parsers into a full faction run:
// normalize, section, parse, assemble, then validate the whole dataset.
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/carnevale-tools/card-parser/internal/assemble"
	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/validate"
)

// Processor runs the parse pipeline for faction documents. Each page parse is
// a pure function of the page text and the read-only reference, so pages may
// be parsed concurrently; Workers caps the fan-out (<=1 means sequential).
type Processor struct {
	Logger  *slog.Logger
	Ref     *reference.Reference
	Workers int
}

// NewProcessor wires a processor. A nil reference degrades to the empty
// dictionary; a nil logger falls back to the default.
func NewProcessor(logger *slog.Logger, ref *reference.Reference, workers int) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if ref == nil {
		ref = reference.Empty()
	}
	return &Processor{Logger: logger, Ref: ref, Workers: workers}
}

// Result is the outcome of one faction run.
type Result struct {
	RunID      uuid.UUID
	Record     *entity.FactionRecord
	Report     validate.Report
	PageErrors []entity.PageError
}

// pageOutcome keeps per-page results indexed by input position so concurrent
// parsing cannot reorder output.
type pageOutcome struct {
	card entity.CardRecord
	err  *entity.PageError
	skip bool
}

// Run parses every page of one faction document, assembles the record, and
// validates the dataset. Page 1 is reserved for the faction ability and never
// contributes a card. The run always completes: unparseable pages surface as
// PageErrors and as validation findings, never as a returned error.
func (p *Processor) Run(ctx context.Context, faction string, pages []entity.Page) (Result, error) {
	runID := uuid.New()
	log := p.Logger.With("run_id", runID, "faction", faction)

	if err := ctx.Err(); err != nil {
		return Result{RunID: runID}, err
	}

	record := &entity.FactionRecord{
		Faction: faction,
		Cards:   []entity.CardRecord{},
	}

	outcomes := make([]pageOutcome, len(pages))
	parsePage := func(i int) {
		page := pages[i]
		if page.Page == 1 {
			outcomes[i].skip = true
			return
		}
		card, perr := assemble.Card(page.Text, page.Page, p.Ref)
		outcomes[i] = pageOutcome{card: card, err: perr}
	}

	if p.Workers > 1 {
		sem := make(chan struct{}, p.Workers)
		var wg sync.WaitGroup
		for i := range pages {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				parsePage(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range pages {
			parsePage(i)
		}
	}

	var pageErrors []entity.PageError
	for i, page := range pages {
		if page.Page == 1 {
			record.FactionAbility = assemble.FactionAbility(page.Text)
			log.Info("parse.faction_ability", "name", record.FactionAbility.Name)
			continue
		}
		out := outcomes[i]
		if out.err != nil {
			pageErrors = append(pageErrors, *out.err)
			log.Warn("parse.page.failed", "page", out.err.Page, "error", out.err.Message)
			continue
		}
		record.Cards = append(record.Cards, out.card)
		log.Debug("parse.page.ok", "page", page.Page, "name", out.card.Name)
	}

	engine := validate.NewEngine(record, pages, p.Ref)
	report := engine.Run()
	if report.OK() {
		log.Info("pipeline.validate.ok", "cards", len(record.Cards), "passed", report.Passed, "total", report.Total)
	} else {
		log.Warn("pipeline.validate.failed",
			"cards", len(record.Cards),
			"passed", report.Passed,
			"total", report.Total,
			"errors", len(report.Errors),
		)
	}

	return Result{
		RunID:      runID,
		Record:     record,
		Report:     report,
		PageErrors: pageErrors,
	}, nil
}

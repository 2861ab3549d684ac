// Package validate runs the fixed battery of consistency checks over an
// assembled faction dataset. Checks run independently and accumulate
// findings; a failing check never halts the rest, so the report always
// enumerates everything that is inconsistent.
package validate

import (
	"fmt"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
)

// Report is the outcome of one validation run.
type Report struct {
	Passed   int      `json:"passed"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Passed == r.Total }

// Engine holds the inputs of one validation run: the assembled record, the
// original per-page text, and the reference dictionary.
type Engine struct {
	record *entity.FactionRecord
	pages  []entity.Page
	ref    *reference.Reference

	errors   []string
	warnings []string
}

// NewEngine builds a validation engine for one faction dataset.
func NewEngine(record *entity.FactionRecord, pages []entity.Page, ref *reference.Reference) *Engine {
	if ref == nil {
		ref = reference.Empty()
	}
	return &Engine{record: record, pages: pages, ref: ref}
}

type check struct {
	name string
	run  func(*Engine, string)
}

// The battery runs in this fixed order.
var battery = []check{
	{"Page Mapping", (*Engine).checkPageMapping},
	{"Required Fields", (*Engine).checkRequiredFields},
	{"No Duplicate Common Abilities", (*Engine).checkNoDuplicateCommons},
	{"Common Abilities Reference Check", (*Engine).checkCommonsInReference},
	{"Unique Ability Names", (*Engine).checkAbilityNameUniqueness},
	{"Ability Completeness", (*Engine).checkAbilityCompleteness},
	{"Weapon Names", (*Engine).checkWeaponNames},
	{"Faction Ability", (*Engine).checkFactionAbility},
}

// Run executes every check and returns the accumulated report.
func (e *Engine) Run() Report {
	passed := 0
	for _, c := range battery {
		before := len(e.errors)
		c.run(e, c.name)
		if len(e.errors) == before {
			passed++
		}
	}
	return Report{
		Passed:   passed,
		Total:    len(battery),
		Errors:   e.errors,
		Warnings: e.warnings,
	}
}

func (e *Engine) errorf(check, format string, args ...any) {
	e.errors = append(e.errors, fmt.Sprintf("%s: %s", check, fmt.Sprintf(format, args...)))
}

func (e *Engine) warnf(check, format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf("%s: %s", check, fmt.Sprintf(format, args...)))
}

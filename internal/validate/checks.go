package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/carnevale-tools/card-parser/internal/entity"
)

// checkPageMapping verifies the bijection between source pages and card
// pages: every non-faction-ability page yields exactly one card, no page
// dropped, no page invented.
func (e *Engine) checkPageMapping(name string) {
	extracted := map[int]struct{}{}
	for _, p := range e.pages {
		if p.Page > 1 {
			extracted[p.Page] = struct{}{}
		}
	}
	parsed := map[int]struct{}{}
	for _, c := range e.record.Cards {
		parsed[c.Page] = struct{}{}
	}

	if missing := diffSorted(extracted, parsed); len(missing) > 0 {
		e.errorf(name, "pages in extracted text but not in parsed cards: %v", missing)
	}
	if extra := diffSorted(parsed, extracted); len(extra) > 0 {
		e.errorf(name, "pages in parsed cards but not in extracted text: %v", extra)
	}
}

// checkRequiredFields verifies non-empty top-level fields and a fully
// decoded stat block on every card.
func (e *Engine) checkRequiredFields(name string) {
	for i, c := range e.record.Cards {
		label := cardLabel(c, i)
		if strings.TrimSpace(c.Name) == "" {
			e.errorf(name, "%s: missing or empty field 'name'", label)
		}
		if c.Rank == nil {
			e.errorf(name, "%s: missing or null field 'rank'", label)
		} else if strings.TrimSpace(*c.Rank) == "" {
			e.errorf(name, "%s: empty field 'rank'", label)
		}
		if strings.TrimSpace(c.Version) == "" {
			e.errorf(name, "%s: missing or empty field 'version'", label)
		}

		if c.StatBlock.IsEmpty() {
			e.errorf(name, "%s: missing or empty stat_block", label)
			continue
		}
		statFields := []struct {
			field string
			value *int
		}{
			{"movement", c.StatBlock.Movement},
			{"dexterity", c.StatBlock.Dexterity},
			{"attack", c.StatBlock.Attack},
			{"protection", c.StatBlock.Protection},
			{"mind", c.StatBlock.Mind},
		}
		for _, sf := range statFields {
			if sf.value == nil {
				e.errorf(name, "%s: missing or null stat_block.%s", label, sf.field)
			}
		}
	}
}

// checkNoDuplicateCommons flags a common ability listed twice on one card.
func (e *Engine) checkNoDuplicateCommons(name string) {
	for i, c := range e.record.Cards {
		seen := map[string]struct{}{}
		dupes := map[string]struct{}{}
		for _, ability := range c.Abilities.Common {
			if _, ok := seen[ability]; ok {
				dupes[ability] = struct{}{}
			}
			seen[ability] = struct{}{}
		}
		if len(dupes) > 0 {
			e.errorf(name, "%s: duplicate common abilities: %v", cardLabel(c, i), sortedKeys(dupes))
		}
	}
}

// checkCommonsInReference verifies every common ability resolves against the
// reference dictionary, exactly or by filling a parametric slot.
func (e *Engine) checkCommonsInReference(name string) {
	if len(e.ref.Common) == 0 {
		e.warnf(name, "reference dictionary is empty; every ability was classified as unique")
	}
	for i, c := range e.record.Cards {
		for _, ability := range c.Abilities.Common {
			if !e.ref.ContainsPattern(ability) {
				e.errorf(name, "%s: common ability %q not found in reference", cardLabel(c, i), ability)
			}
		}
	}
}

// checkAbilityNameUniqueness verifies unique and command ability names do not
// collide within one card.
func (e *Engine) checkAbilityNameUniqueness(name string) {
	for i, c := range e.record.Cards {
		seen := map[string]struct{}{}
		flag := func(abilityName string) {
			if _, ok := seen[abilityName]; ok {
				e.errorf(name, "%s: duplicate ability name %q appears in multiple sections", cardLabel(c, i), abilityName)
			}
			seen[abilityName] = struct{}{}
		}
		for _, a := range c.Abilities.Unique {
			flag(a.Name)
		}
		for _, a := range c.Abilities.Command {
			flag(a.Name)
		}
	}
}

// checkAbilityCompleteness verifies every unique and command ability carries
// a non-empty name and description.
func (e *Engine) checkAbilityCompleteness(name string) {
	for i, c := range e.record.Cards {
		label := cardLabel(c, i)
		for j, a := range c.Abilities.Unique {
			if strings.TrimSpace(a.Name) == "" {
				e.errorf(name, "%s: unique ability #%d missing or empty name", label, j+1)
			}
			if strings.TrimSpace(a.Description) == "" {
				e.errorf(name, "%s: unique ability %q missing or empty description", label, abilityLabel(a.Name, j))
			}
		}
		for j, a := range c.Abilities.Command {
			if strings.TrimSpace(a.Name) == "" {
				e.errorf(name, "%s: command ability #%d missing or empty name", label, j+1)
			}
			if strings.TrimSpace(a.Description) == "" {
				e.errorf(name, "%s: command ability %q missing or empty description", label, abilityLabel(a.Name, j))
			}
		}
	}
}

// checkWeaponNames verifies every weapon row kept a name. When a weapon
// dictionary is loaded, an abilities tail that resolves against none of its
// entries is flagged as a warning; tails are free-form, so this never fails
// the check.
func (e *Engine) checkWeaponNames(name string) {
	for i, c := range e.record.Cards {
		for j, w := range c.Weapons {
			if strings.TrimSpace(w.Name) == "" {
				e.errorf(name, "%s: weapon #%d missing or empty name", cardLabel(c, i), j+1)
			}
			if tail := strings.TrimSpace(w.Abilities); tail != "" && len(e.ref.Weapon) > 0 {
				if !e.knownWeaponAbility(tail) {
					e.warnf(name, "%s: weapon %q abilities %q match no known weapon ability", cardLabel(c, i), w.Name, tail)
				}
			}
		}
	}
}

func (e *Engine) knownWeaponAbility(tail string) bool {
	for _, p := range e.ref.Weapon {
		if p.Loose != "" && strings.Contains(tail, p.Loose) {
			return true
		}
	}
	return false
}

// checkFactionAbility verifies the page-1 faction ability was recovered.
func (e *Engine) checkFactionAbility(name string) {
	fa := e.record.FactionAbility
	if fa.Name == "" && fa.Description == "" {
		e.errorf(name, "missing faction_ability")
		return
	}
	if strings.TrimSpace(fa.Name) == "" {
		e.errorf(name, "faction ability missing or empty name")
	}
	if strings.TrimSpace(fa.Description) == "" {
		e.errorf(name, "faction ability missing or empty description")
	}
}

func cardLabel(c entity.CardRecord, idx int) string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return fmt.Sprintf("card #%d", idx+1)
}

func abilityLabel(name string, idx int) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return fmt.Sprintf("#%d", idx+1)
}

func diffSorted(a, b map[int]struct{}) []int {
	var out []int
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

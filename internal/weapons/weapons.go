// Package weapons decomposes weapon table rows into their positional fields.
package weapons

import (
	"regexp"
	"strings"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/section"
)

// rowRe matches one weapon row: a greedy quote-free name, then optional
// range (inches or dash), evasion, damage, penetration (signed integer or
// dash), then a free-form abilities tail.
var rowRe = regexp.MustCompile(`^([^"]+)\s+(\d+"|-)?\s*([+-]?\d+|-)?\s*([+-]?\d+|-)?\s*([+-]?\d+|-)?\s*(.*?)$`)

// Parse extracts weapon entries from a page. A line counts as a weapon only
// when at least one of range/evasion/damage is present and not a dash
// placeholder; dashes in accepted rows are resolved absences and normalize to
// "0" (or `0"` for range). Lines failing the shape test are continuation
// text and silently dropped.
func Parse(text string) []entity.WeaponEntry {
	zone := strings.TrimSpace(section.WeaponZone(text))
	if zone == "" {
		return []entity.WeaponEntry{}
	}

	entries := []entity.WeaponEntry{}
	for _, line := range strings.Split(zone, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := rowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		rangeVal, evasion, damage, penetration, tail := m[2], m[3], m[4], m[5], m[6]
		if !isWeaponRow(rangeVal, evasion, damage) {
			continue
		}
		entries = append(entries, entity.WeaponEntry{
			Name:        name,
			Range:       orDefault(rangeVal, `0"`),
			Evasion:     orDefault(evasion, "0"),
			Damage:      orDefault(damage, "0"),
			Penetration: orDefault(penetration, "0"),
			Abilities:   strings.TrimSpace(tail),
		})
	}
	return entries
}

func isWeaponRow(rangeVal, evasion, damage string) bool {
	for _, v := range []string{rangeVal, evasion, damage} {
		if v != "" && v != "-" {
			return true
		}
	}
	return false
}

func orDefault(v, def string) string {
	if v == "" || v == "-" {
		return def
	}
	return v
}

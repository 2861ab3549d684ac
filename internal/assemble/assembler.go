// Package assemble composes the per-page parsers into one CardRecord, and
// derives the faction-level ability from page 1.
package assemble

import (
	"strings"

	"github.com/carnevale-tools/card-parser/constants"
	"github.com/carnevale-tools/card-parser/internal/abilities"
	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/section"
	"github.com/carnevale-tools/card-parser/internal/stats"
	"github.com/carnevale-tools/card-parser/internal/weapons"
)

// Card parses one page into a CardRecord. A page with no detectable name line
// is the only hard per-page failure and comes back as a PageError; every
// other absence degrades to a typed default.
func Card(text string, page int, ref *reference.Reference) (entity.CardRecord, *entity.PageError) {
	name := nameLine(text)
	if name == "" {
		return entity.CardRecord{}, &entity.PageError{Page: page, Message: "no character name found"}
	}

	card := entity.CardRecord{
		Name:     name,
		Page:     page,
		Keywords: []string{},
		Version:  constants.DefaultVersion,
		Weapons:  []entity.WeaponEntry{},
	}

	keywords, rank := section.Keywords(text)
	if keywords != nil {
		card.Keywords = keywords
	}
	card.Rank = rank

	if version, digits, ok := stats.FindFused(text); ok {
		card.Version = version
		line := stats.Decode(digits, stats.HasCommandHeader(text), stats.HasWillHeader(text))
		card.Actions = line.Actions
		card.Life = line.Life
		card.Will = line.Will
		card.Command = line.Command
	}

	card.BaseSize, card.Ducats = stats.DecodeCost(text)
	card.StatBlock = stats.DecodeStatBlock(text)
	card.Weapons = weapons.Parse(text)
	card.Abilities = abilities.Parse(text, ref)

	return card, nil
}

// nameLine finds the character name: the trailing banner on each page, i.e.
// the last non-empty line under the length ceiling.
func nameLine(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line != "" && len(line) < constants.NameMaxLen {
			return line
		}
	}
	return ""
}

package abilities

import (
	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/section"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

// Parse runs the full ability pipeline for one page: outside-zone unique
// abilities first, then the Character Abilities zone — normalized, stripped
// of command blocks, and segmented into common and unique abilities. A page
// with no Character Abilities header still gets its outside uniques.
func Parse(text string, ref *reference.Reference) entity.AbilitySet {
	set := entity.AbilitySet{
		Common:  []string{},
		Unique:  []entity.UniqueAbility{},
		Command: []entity.CommandAbility{},
	}

	set.Unique = append(set.Unique, OutsideUniques(text, ref)...)

	zone := section.AbilitiesZone(text)
	if zone == "" {
		return set
	}
	cleaned := textnorm.Clean(zone)

	commands, commandCommons := ExtractCommands(cleaned, ref)
	set.Command = append(set.Command, commands...)
	set.Common = append(set.Common, commandCommons...)

	commons, uniques := Remaining(cleaned, ref, text)
	set.Common = append(set.Common, commons...)
	set.Unique = append(set.Unique, uniques...)

	return set
}

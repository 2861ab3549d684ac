package abilities

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

var outsideZoneRe = regexp.MustCompile(`(?s)MIND\s*\n\s*\d+\s+\d+\s+\d+\s+\d+\s+\d+\s*\n(.*?)(?:Keywords|Character Abilities)`)

// Words that mark a line as description prose rather than an ability name.
var descriptionWords = []string{
	"friendly", "character", "gain", "until", "keyword", "instead", "add", "when", "may",
}

// OutsideUniques finds unique abilities printed between the stat block and
// the Keywords header, outside the Character Abilities zone. Name lines are
// told apart from description continuations by a short-line/title-case
// heuristic; each name collects the following lines as its description until
// the next name line. Names that resolve against the reference are skipped —
// they are common abilities, picked up elsewhere.
func OutsideUniques(text string, ref *reference.Reference) []entity.UniqueAbility {
	m := outsideZoneRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	zone := strings.TrimSpace(m[1])
	if zone == "" {
		return nil
	}

	var out []entity.UniqueAbility
	currentName := ""
	var descLines []string

	flush := func() {
		if currentName == "" || currentName == "." {
			return
		}
		if ref.Match(currentName) != "" {
			return
		}
		out = append(out, entity.UniqueAbility{
			Name:        currentName,
			Description: textnorm.Description(strings.Join(descLines, "\n")),
		})
	}

	for _, line := range strings.Split(zone, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isAbilityName(line) {
			flush()
			currentName = line
			descLines = nil
		} else if currentName != "" {
			descLines = append(descLines, line)
		}
	}
	flush()
	return out
}

// isAbilityName classifies a line as an ability name: short, starting with a
// capital, free of description vocabulary, and not a sentence fragment.
func isAbilityName(line string) bool {
	if len(line) <= 2 || line == "." {
		return false
	}
	if len(strings.Fields(line)) > 3 {
		return false
	}
	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	lower := strings.ToLower(line)
	for _, w := range descriptionWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return !strings.HasSuffix(line, ".")
}

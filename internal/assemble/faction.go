package assemble

import (
	"regexp"
	"strings"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

var factionMarkerRe = regexp.MustCompile(`(?s)([^\n]*?)\s*PULSE Command Ability\s*(.*)`)

// Lines near the marker that are layout boilerplate, never the ability name.
var factionNoise = []string{"faction", "keyword", "may use", "command ability"}

// FactionAbility derives the faction-level ability from page 1, anchored on
// the literal "PULSE Command Ability" marker. The name is the nearest
// preceding line that reads like a title rather than rules boilerplate; the
// description is everything after the marker, whitespace-normalized. A page
// without the marker yields the zero value.
func FactionAbility(text string) entity.FactionAbility {
	m := factionMarkerRe.FindStringSubmatch(text)
	if m == nil {
		return entity.FactionAbility{}
	}

	var lines []string
	for _, line := range strings.Split(m[1], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	name := "Unknown Ability"
	for _, line := range lines {
		if isFactionNoise(line) {
			continue
		}
		if len(strings.Fields(line)) <= 6 && !strings.HasPrefix(line, "Any") {
			name = line
			break
		}
	}

	return entity.FactionAbility{
		Name:        name,
		Description: textnorm.Description(m[2]),
	}
}

func isFactionNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range factionNoise {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

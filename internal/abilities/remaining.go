package abilities

import (
	"regexp"
	"strings"

	"github.com/carnevale-tools/card-parser/internal/entity"
	"github.com/carnevale-tools/card-parser/internal/reference"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

var (
	commandStripRe = regexp.MustCompile(`(?s).*?(?:PULSE|AURA)\s*Command Ability\s*.*?(\n[A-Z]|\d+\.\d+\.\d+|$)`)
	parensOnlyRe   = regexp.MustCompile(`^\s*\([^)]*\)\s*$`)
)

// Substrings that mark a fragment or recovered description as card chrome
// (stat headers, weapon table) rather than ability text.
var chromeMarkers = []string{"Actions Life Will", "MOVEMENT DEXTERITY"}

var descriptionChromeMarkers = []string{
	"Actions Life Will", "MOVEMENT DEXTERITY", "Range Evasion", "PULSE Command", "AURA Command",
}

// Remaining parses the ability text left after command blocks are removed.
// Fragments resolving against the reference become common abilities; the
// rest become unique-ability candidates whose descriptions are recovered
// from the original page text, anchored on the candidate name.
func Remaining(cleaned string, ref *reference.Reference, original string) (commons []string, uniques []entity.UniqueAbility) {
	withoutCommands := commandStripRe.ReplaceAllString(cleaned, "$1")

	for _, fragment := range Segment(withoutCommands, ref) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" || containsAny(fragment, chromeMarkers) {
			continue
		}

		if normalized := ref.Match(fragment); normalized != "" {
			commons = append(commons, normalized)
			continue
		}

		// Unique-ability candidate: a plausible name, not a stray
		// parenthetical or punctuation fragment.
		if len(strings.Fields(fragment)) > 8 || parensOnlyRe.MatchString(fragment) {
			continue
		}
		if fragment == "." || strings.HasSuffix(fragment, " .") {
			continue
		}
		uniques = append(uniques, entity.UniqueAbility{
			Name:        fragment,
			Description: recoverDescription(fragment, original),
		})
	}
	return commons, uniques
}

// recoverDescription looks the candidate name up in the original page text
// and takes what follows, up to the next title-cased line, version token, or
// bullet. Stat-header or weapon-table text means the lookahead ran past the
// ability zone; those recoveries are discarded.
func recoverDescription(name, original string) string {
	descRe := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(name) + `\s*(.*?)(?:\n[A-Z][a-z]|\n\d+\.\d+\.\d+|\n•|$)`)
	m := descRe.FindStringSubmatch(original)
	if m == nil {
		return ""
	}
	candidate := strings.TrimSpace(m[1])
	if candidate == "" || containsAny(candidate, descriptionChromeMarkers) {
		return ""
	}
	return textnorm.Description(candidate)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

package section

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carnevale-tools/card-parser/constants"
	"github.com/carnevale-tools/card-parser/internal/textnorm"
)

var (
	disciplineRe  = regexp.MustCompile(`(?s)Discipline\s*\(\s*([^)]*(?:\n[^)•]*)*)\s*\)`)
	parentheticRe = regexp.MustCompile(`\([^)]*\)`)
)

// Keywords extracts the keyword list and the rank (Leader/Hero/Henchman
// line) from a page. Discipline keywords span multiple bullet-free lines and
// keep their parenthesized content; plain keywords drop theirs. Fragments of
// two characters or fewer are extraction noise and skipped.
func Keywords(text string) (keywords []string, rank *string) {
	zone := KeywordsZone(text)
	if zone == "" {
		return nil, nil
	}

	for _, m := range disciplineRe.FindAllStringSubmatch(zone, -1) {
		content := textnorm.Description(strings.ReplaceAll(m[1], "\n", " "))
		content = strings.TrimSpace(strings.TrimRight(content, ","))
		for broken, fixed := range constants.DisciplineRepairs {
			content = strings.ReplaceAll(content, broken, fixed)
		}
		keywords = append(keywords, fmt.Sprintf("Discipline ( %s )", content))
	}
	zone = disciplineRe.ReplaceAllString(zone, "")

	for _, item := range strings.Split(zone, "•") {
		item = textnorm.Description(item)
		if item == "" || strings.HasPrefix(item, constants.CharacterAbilitiesHeader) {
			continue
		}
		if len(item) <= 2 {
			continue
		}
		if containsRankWord(item) {
			r := item
			rank = &r
			continue
		}
		if strings.Contains(item, "Faction") {
			continue
		}
		if clean := strings.TrimSpace(parentheticRe.ReplaceAllString(item, "")); clean != "" {
			keywords = append(keywords, clean)
		}
	}
	return keywords, rank
}

func containsRankWord(item string) bool {
	for _, w := range constants.RankWords {
		if strings.Contains(item, w) {
			return true
		}
	}
	return false
}
